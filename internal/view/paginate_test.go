package view

import (
	"fmt"
	"strings"
	"testing"
)

func records(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("rec-%02d", i+1)
	}
	return out
}

func TestPaginateWindows(t *testing.T) {
	p := Paginate(records(23), 1, 10)
	if len(p.Items) != 10 || p.TotalPages != 3 || p.TotalItems != 23 {
		t.Fatalf("page 1: %+v", p)
	}
	if p.HasPrev || !p.HasNext {
		t.Fatalf("page 1 nav flags: %+v", p)
	}

	p = Paginate(records(23), 3, 10)
	if len(p.Items) != 3 || p.Items[0] != "rec-21" {
		t.Fatalf("page 3: %+v", p)
	}
	if !p.HasPrev || p.HasNext {
		t.Fatalf("page 3 nav flags: %+v", p)
	}
	if p.Start != 21 || p.End != 23 {
		t.Fatalf("page 3 range: %d-%d", p.Start, p.End)
	}
}

func TestPaginateClampsAfterFilterShrinks(t *testing.T) {
	// 23 records on page 3, then a filter narrows the set to 5: the request
	// still says page 3, but only page 1 exists.
	p := Paginate(records(5), 3, 10)
	if p.Number != 1 || len(p.Items) != 5 {
		t.Fatalf("expected clamp to page 1 with all 5 records, got %+v", p)
	}
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate([]string{}, 1, 10)
	if p.TotalPages != 1 || p.Number != 1 || len(p.Items) != 0 {
		t.Fatalf("empty set: %+v", p)
	}
	if p.Start != 0 || p.End != 0 {
		t.Fatalf("empty range: %d-%d", p.Start, p.End)
	}
}

func TestPageFromQuery(t *testing.T) {
	if PageFromQuery("") != 1 || PageFromQuery("abc") != 1 || PageFromQuery("-2") != 1 {
		t.Fatal("bad input should default to page 1")
	}
	if PageFromQuery("4") != 4 {
		t.Fatal("valid page parsed wrong")
	}
}

func TestRenderTicketBodySanitizes(t *testing.T) {
	out := RenderTicketBody("**bold** <script>alert(1)</script>")
	if out == "" {
		t.Fatal("empty render")
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("script survived sanitisation: %s", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("markdown not rendered: %s", out)
	}
}
