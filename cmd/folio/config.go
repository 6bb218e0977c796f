package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/folio/model"
)

// reportFile is the YAML report configuration accepted by the CLI. All
// fields are optional; unset style fields fall back to the library
// defaults. Margins are given in inches for readability and converted to
// points.
type reportFile struct {
	Page struct {
		Size        string `yaml:"size"`
		Orientation string `yaml:"orientation"`
	} `yaml:"page"`
	Margins struct {
		Left   *float64 `yaml:"left"`
		Right  *float64 `yaml:"right"`
		Top    *float64 `yaml:"top"`
		Bottom *float64 `yaml:"bottom"`
	} `yaml:"margins"`
	Title       string `yaml:"title"`
	Footer      string `yaml:"footer"`
	HeaderImage string `yaml:"header_image"`
	TitleStyle  struct {
		Font      string  `yaml:"font"`
		Size      float64 `yaml:"size"`
		Color     string  `yaml:"color"`
		Alignment string  `yaml:"alignment"`
	} `yaml:"title_style"`
	TableStyle struct {
		HeaderBackground string  `yaml:"header_background"`
		HeaderTextColor  string  `yaml:"header_text_color"`
		BodyBackground   string  `yaml:"body_background"`
		BodyTextColor    string  `yaml:"body_text_color"`
		GridColor        string  `yaml:"grid_color"`
		HeaderFontSize   float64 `yaml:"header_font_size"`
		BodyFontSize     float64 `yaml:"body_font_size"`
		RowHeight        float64 `yaml:"row_height"`
	} `yaml:"table_style"`
	Columns []string `yaml:"columns"`
	Include struct {
		RowCount bool `yaml:"row_count"`
		Totals   bool `yaml:"totals"`
		Averages bool `yaml:"averages"`
	} `yaml:"include"`
}

const defaultMarginInches = 0.5

// loadReportConfig reads and validates a YAML report configuration.
// Enumerated options (page size names, orientation, alignment) and margin
// signs are validated here: the rendering core assumes valid input.
func loadReportConfig(path string) (model.ReportConfiguration, error) {
	var rf reportFile
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return model.ReportConfiguration{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &rf); err != nil {
			return model.ReportConfiguration{}, fmt.Errorf("parsing config: %w", err)
		}
	}
	return rf.toConfiguration()
}

func (rf reportFile) toConfiguration() (model.ReportConfiguration, error) {
	cfg := model.ReportConfiguration{}

	cfg.PageSize = rf.Page.Size
	if cfg.PageSize == "" {
		cfg.PageSize = "A4"
	}
	if _, ok := model.PageSizeByName(cfg.PageSize); !ok {
		return cfg, fmt.Errorf("unknown page size %q (want A4, Letter, or Legal)", cfg.PageSize)
	}

	switch rf.Page.Orientation {
	case "", "portrait":
		cfg.Orientation = model.Portrait
	case "landscape":
		cfg.Orientation = model.Landscape
	default:
		return cfg, fmt.Errorf("unknown orientation %q (want portrait or landscape)", rf.Page.Orientation)
	}

	margins, err := marginsFromInches(rf.Margins.Left, rf.Margins.Right, rf.Margins.Top, rf.Margins.Bottom)
	if err != nil {
		return cfg, err
	}
	cfg.Margins = margins

	cfg.TitleStyle.Font = rf.TitleStyle.Font
	cfg.TitleStyle.FontSize = rf.TitleStyle.Size
	if rf.TitleStyle.Color != "" {
		c, err := model.HexColor(rf.TitleStyle.Color)
		if err != nil {
			return cfg, fmt.Errorf("title color: %w", err)
		}
		cfg.TitleStyle.Color = c
	}
	switch rf.TitleStyle.Alignment {
	case "":
		cfg.TitleStyle.Alignment = model.AlignCenter
	case "left":
		cfg.TitleStyle.Alignment = model.AlignLeft
	case "center":
		cfg.TitleStyle.Alignment = model.AlignCenter
	case "right":
		cfg.TitleStyle.Alignment = model.AlignRight
	default:
		return cfg, fmt.Errorf("unknown alignment %q (want left, center, or right)", rf.TitleStyle.Alignment)
	}

	ts := &cfg.TableStyle
	for _, c := range []struct {
		raw  string
		dst  *model.Color
		name string
	}{
		{rf.TableStyle.HeaderBackground, &ts.HeaderBackground, "header_background"},
		{rf.TableStyle.HeaderTextColor, &ts.HeaderTextColor, "header_text_color"},
		{rf.TableStyle.BodyBackground, &ts.BodyBackground, "body_background"},
		{rf.TableStyle.BodyTextColor, &ts.BodyTextColor, "body_text_color"},
		{rf.TableStyle.GridColor, &ts.GridColor, "grid_color"},
	} {
		if c.raw == "" {
			continue
		}
		parsed, err := model.HexColor(c.raw)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = parsed
	}
	ts.HeaderFontSize = rf.TableStyle.HeaderFontSize
	ts.BodyFontSize = rf.TableStyle.BodyFontSize
	ts.RowHeight = rf.TableStyle.RowHeight

	if rf.HeaderImage != "" {
		data, err := os.ReadFile(rf.HeaderImage)
		if err != nil {
			return cfg, fmt.Errorf("reading header image: %w", err)
		}
		cfg.HeaderImage = &model.HeaderImage{Data: data}
	}

	cfg.FooterText = rf.Footer
	cfg.Content = model.ContentSelection{
		ReportTitle:     rf.Title,
		SelectedColumns: rf.Columns,
		IncludeRowCount: rf.Include.RowCount,
		IncludeTotals:   rf.Include.Totals,
		IncludeAverages: rf.Include.Averages,
	}
	if cfg.Content.ReportTitle == "" {
		cfg.Content.ReportTitle = "Data Report"
	}

	return cfg, nil
}

func marginsFromInches(left, right, top, bottom *float64) (model.Margins, error) {
	inch := func(v *float64, side string) (float64, error) {
		if v == nil {
			return defaultMarginInches * model.PointsPerInch, nil
		}
		if *v < 0 {
			return 0, fmt.Errorf("negative %s margin %g", side, *v)
		}
		return *v * model.PointsPerInch, nil
	}

	var m model.Margins
	var err error
	if m.Left, err = inch(left, "left"); err != nil {
		return m, err
	}
	if m.Right, err = inch(right, "right"); err != nil {
		return m, err
	}
	if m.Top, err = inch(top, "top"); err != nil {
		return m, err
	}
	if m.Bottom, err = inch(bottom, "bottom"); err != nil {
		return m, err
	}
	return m, nil
}
