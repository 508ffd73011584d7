package earth

import "testing"

// Reference values computed with ERFA at MJD 54388 TT.
func TestMeanObliquity(t *testing.T) {
	tt := centuries(54388)
	assertRel(t, "MeanObliquityIAU1980", MeanObliquityIAU1980(tt), 0.4090751347643816, 1e-14)
	assertRel(t, "MeanObliquityIAU2006", MeanObliquityIAU2006(tt), 0.4090749229387258, 1e-14)
}
