package render

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/folio/model"
)

// HTML renders a layout to a standalone HTML document. Each page becomes a
// fixed-size <div class="page">; table segments repeat their header row the
// same way the PDF output does. Useful for browser previews and for tests
// that want to inspect structure without a PDF parser.
type HTML struct{}

// NewHTML creates an HTML renderer.
func NewHTML() *HTML {
	return &HTML{}
}

func (r *HTML) Render(l *model.Layout) ([]byte, error) {
	body := elem(atom.Body, "")

	pages := make([]*html.Node, l.PageCount)
	for i := range pages {
		pages[i] = elem(atom.Div, "",
			attr("class", "page"),
			attr("style", fmt.Sprintf("width:%.2fpt;min-height:%.2fpt;padding:%.2fpt %.2fpt %.2fpt %.2fpt",
				l.Page.Width, l.Page.Height,
				l.Margins.Top, l.Margins.Right, l.Margins.Bottom, l.Margins.Left)),
		)
		body.AppendChild(pages[i])
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("layout has no pages")
	}

	for _, pb := range l.Blocks {
		if pb.Page < 0 || pb.Page >= len(pages) {
			return nil, fmt.Errorf("block assigned to page %d of %d", pb.Page, len(pages))
		}
		n, err := blockNode(pb)
		if err != nil {
			return nil, err
		}
		if n != nil {
			pages[pb.Page].AppendChild(n)
		}
	}

	head := elem(atom.Head, "")
	meta := elem(atom.Meta, "", attr("charset", "utf-8"))
	head.AppendChild(meta)

	root := elem(atom.Html, "")
	root.AppendChild(head)
	root.AppendChild(body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.Bytes(), nil
}

func blockNode(pb model.PlacedBlock) (*html.Node, error) {
	switch blk := pb.Block.(type) {
	case *model.ImageBlock:
		mime := "image/" + blk.Format
		src := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(blk.Data)
		return elem(atom.Img, "",
			attr("src", src),
			attr("style", fmt.Sprintf("width:%.2fpt;height:%.2fpt", blk.Width, blk.Height)),
		), nil

	case *model.TitleBlock:
		return textNode(atom.H1, blk.Text, blk.Style), nil

	case *model.TextBlock:
		return textNode(atom.P, blk.Text, blk.Style), nil

	case *model.TableBlock:
		return tableNode(blk, pb), nil

	case *model.SpacerBlock:
		return elem(atom.Div, "",
			attr("class", "spacer"),
			attr("style", fmt.Sprintf("height:%.2fpt", blk.Gap)),
		), nil

	default:
		return nil, fmt.Errorf("unsupported block type %s", pb.Block.Type())
	}
}

func textNode(a atom.Atom, text string, st model.TitleStyle) *html.Node {
	style := fmt.Sprintf("font-family:%s;font-size:%.1fpt;color:%s;text-align:%s;margin:0 0 %.1fpt 0",
		st.Font, st.FontSize, st.Color.Hex(), st.Alignment, st.SpaceAfter)
	n := elem(a, "", attr("style", style))
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func tableNode(blk *model.TableBlock, pb model.PlacedBlock) *html.Node {
	st := blk.Style
	table := elem(atom.Table, "",
		attr("style", fmt.Sprintf("border-collapse:collapse;width:100%%;border:%.1fpt solid %s",
			st.GridWidth, st.GridColor.Hex())),
	)

	cellStyle := fmt.Sprintf("border:%.1fpt solid %s;height:%.1fpt", st.GridWidth, st.GridColor.Hex(), st.RowHeight)

	thead := elem(atom.Thead, "")
	headRow := elem(atom.Tr, "",
		attr("style", fmt.Sprintf("background:%s;color:%s;font-family:%s;font-size:%.1fpt",
			st.HeaderBackground.Hex(), st.HeaderTextColor.Hex(), st.HeaderFont, st.HeaderFontSize)),
	)
	for _, cell := range blk.Header {
		th := elem(atom.Th, "", attr("style", cellStyle))
		th.AppendChild(&html.Node{Type: html.TextNode, Data: cell})
		headRow.AppendChild(th)
	}
	thead.AppendChild(headRow)
	table.AppendChild(thead)

	tbody := elem(atom.Tbody, "")
	rowStyle := fmt.Sprintf("background:%s;color:%s;font-family:%s;font-size:%.1fpt",
		st.BodyBackground.Hex(), st.BodyTextColor.Hex(), st.BodyFont, st.BodyFontSize)
	for row := pb.RowStart; row < pb.RowEnd; row++ {
		tr := elem(atom.Tr, "", attr("style", rowStyle))
		for _, cell := range blk.Body[row] {
			td := elem(atom.Td, "", attr("style", cellStyle))
			td.AppendChild(&html.Node{Type: html.TextNode, Data: cell})
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)
	return table
}

func elem(a atom.Atom, data string, attrs ...html.Attribute) *html.Node {
	if data == "" {
		data = a.String()
	}
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     data,
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}
