package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12 {
		t.Errorf("(1) expected d to be 12px, is %v", d)
	}
	//
	d, _, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %v", d)
	}
	//
	d, ispcnt, err := ParseDimen("20%")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if ispcnt != true {
		t.Errorf("(3) expected percentage-marker to be true, is %v", ispcnt)
	} else if d != 20 {
		t.Errorf("(3) expected figure 20, is %v", d)
	}
	//
	d, _, err = ParseDimen("-7.5")
	if err != nil {
		t.Errorf("(4) %s", err.Error())
	} else if d != -7.5 {
		t.Errorf("(4) expected d to be -7.5px, is %v", d)
	}
	//
	if _, _, err = ParseDimen("12pt"); err == nil {
		t.Errorf("(5) expected unit pt to be rejected")
	}
}

func TestEqualTolerance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.core")
	defer teardown()
	//
	third := Px(100) / 3
	if !Equal(third*3, 100) {
		t.Errorf("expected 3 * 100/3 to equal 100 within tolerance, is %v", third*3)
	}
	if Equal(1, 1.1) {
		t.Errorf("expected 1px and 1.1px to differ")
	}
	if Clamp(5, 10, 20) != 10 || Clamp(25, 10, 20) != 20 || Clamp(5, 10, 0) != 10 {
		t.Errorf("clamp out of order")
	}
}
