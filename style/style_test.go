package style_test

import (
	"image/color"
	"testing"

	"github.com/npillmayer/icss/ast"
	"github.com/npillmayer/icss/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.style")
	defer teardown()
	//
	d, err := style.ParseDimen("20px")
	if err != nil {
		t.Fatal(err)
	}
	var du dimen.DU
	switch m := d.Match(); m {
	case m.Just(&du):
		t.Logf("du = %v", du)
	default:
		t.Errorf("expected 20px to be a fixed value, isn't: %v", d)
	}
	if du != 15*dimen.PT {
		t.Errorf("expected 20px to be 15pt, is %v", du)
	}
	d, err = style.ParseDimen("80%")
	if err != nil {
		t.Fatal(err)
	}
	var p percent.Percent
	switch m := d.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %v", p)
	default:
		t.Errorf("expected 80%% to be a percentage, isn't: %v", d)
	}
	if p != percent.FromInt(80) {
		t.Errorf("expected percentage of 80, is %v", p)
	}
	for _, s := range []style.Property{"", "10", "px", "1.5px", "#fff"} {
		if _, err := style.ParseDimen(s); err == nil {
			t.Errorf("expected %q not to parse as a dimension", s)
		}
	}
}

func TestDimenFromLiteral(t *testing.T) {
	d, ok := style.DimenFromLiteral(ast.Pixel(4))
	if !ok || d.Match().Just(nil) == nil {
		t.Errorf("expected 4px to convert to a fixed dimension, is %v", d)
	}
	d, ok = style.DimenFromLiteral(ast.Percentage(4))
	if !ok || d.Match().Percentage(nil) == nil {
		t.Errorf("expected 4%% to convert to a percentage, is %v", d)
	}
	if d, ok = style.DimenFromLiteral(ast.Color("#fff")); ok || !d.IsNone() {
		t.Errorf("expected color not to convert to a dimension")
	}
}

func TestPropertyColor(t *testing.T) {
	c, err := style.Property("#FF8000").Color()
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{0xff, 0x80, 0, 0xff}) {
		t.Errorf("expected orange, is %v", c)
	}
	c, err = style.Property("#fff").Color()
	if err != nil || c != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("expected white for #fff, is %v (%v)", c, err)
	}
	if _, err = style.Property("red").Color(); err == nil {
		t.Error("expected named color to be rejected")
	}
}

func TestPropertyMapOrder(t *testing.T) {
	var pmap style.PropertyMap
	pmap.Set("width", "10px")
	pmap.Set("color", "#fff")
	pmap.Set("width", "20px")
	keys := pmap.Keys()
	if len(keys) != 2 || keys[0] != "width" || keys[1] != "color" {
		t.Errorf("expected keys [width color], are %v", keys)
	}
	if w, _ := pmap.Get("width"); w != "20px" {
		t.Errorf("expected later declaration to win, width = %v", w)
	}
	if _, ok := pmap.Get("height"); ok {
		t.Error("expected height to be unset")
	}
}
