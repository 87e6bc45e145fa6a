package douceuradapter

import (
	"testing"

	"github.com/npillmayer/icss/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.cssom")
	defer teardown()
	//
	sheet, err := Parse(`p, .menu {
  width: 10px;
  color: #ff0000;
  width: 20px;
}
`)
	if err != nil {
		t.Fatal(err)
	}
	if sheet.Empty() {
		t.Fatal("expected sheet to contain a rule")
	}
	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, have %d", len(rules))
	}
	r := rules[0]
	if r.Selector() != "p, .menu" {
		t.Errorf("expected selector 'p, .menu', is %q", r.Selector())
	}
	if len(r.Properties()) != 2 {
		t.Errorf("expected 2 distinct properties, have %v", r.Properties())
	}
	if r.Value("width") != "20px" {
		t.Errorf("expected last width declaration to win, width = %q", r.Value("width"))
	}
	d, err := cssom.Dimension(r, "width")
	if err != nil || d.Match().Just(nil) == nil {
		t.Errorf("expected width to be a fixed dimension, is %v (%v)", d, err)
	}
}
