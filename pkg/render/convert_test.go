package render

import "testing"

func TestConvertWithoutTool(t *testing.T) {
	if Available() {
		t.Skip("rsvg-convert installed; missing-tool path not reachable")
	}
	if _, err := ToPDF([]byte("<svg/>")); err == nil {
		t.Error("ToPDF should fail without rsvg-convert")
	}
	if _, err := ToPNG([]byte("<svg/>"), 2); err == nil {
		t.Error("ToPNG should fail without rsvg-convert")
	}
}
