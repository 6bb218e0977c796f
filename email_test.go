package folio

import (
	"strings"
	"testing"
	"time"
)

func TestEmailContent(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	ec := EmailContent("Sales Report", true, now)

	if ec.Subject != "Report: Sales Report" {
		t.Errorf("Subject = %q", ec.Subject)
	}
	if !ec.IncludeHeader {
		t.Error("IncludeHeader not carried through")
	}
	if !strings.Contains(ec.Body, `Your report "Sales Report" has been generated`) {
		t.Errorf("body missing report line:\n%s", ec.Body)
	}
	if !strings.Contains(ec.Body, "- Generated on: 2024-06-01 09:30:00") {
		t.Errorf("body missing timestamp:\n%s", ec.Body)
	}
	if !strings.HasPrefix(ec.Body, "Dear User,") {
		t.Errorf("body has unexpected prefix:\n%s", ec.Body)
	}
	if !strings.HasSuffix(ec.Body, "Tableau Data Reporter") {
		t.Errorf("body has unexpected suffix:\n%s", ec.Body)
	}
}

func TestEmailContentIsPure(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	a := EmailContent("T", false, now)
	b := EmailContent("T", false, now)
	if a != b {
		t.Error("identical inputs produced different content")
	}
}
