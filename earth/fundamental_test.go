package earth

import "testing"

// Reference values computed with ERFA.
func TestDelaunaySimon1994(t *testing.T) {
	cases := []struct {
		t               float64
		l, lp, f, d, om float64
	}{
		{
			t:  0,
			l:  2.355555743493879,
			lp: 6.24006012692298,
			f:  1.627905081537519,
			d:  5.198466588650503,
			om: 2.182439196615671,
		},
		{
			t:  1.23456789,
			l:  5.399393108792649,
			lp: 2.806501115480207,
			f:  2.076369815616488,
			d:  5.067187555274916,
			om: -1.793813955913912,
		},
		{
			t:  -1.23456789,
			l:  -0.688281621805333,
			lp: -2.892751475993361,
			f:  -5.103744959722151,
			d:  -0.953439685154148,
			om: 6.158692349145257,
		},
	}
	for _, tc := range cases {
		args := delaunaySimon1994(tc.t)
		assertRel(t, "l", args.l, tc.l, 1e-12)
		assertRel(t, "lp", args.lp, tc.lp, 1e-12)
		assertRel(t, "f", args.f, tc.f, 1e-12)
		assertRel(t, "d", args.d, tc.d, 1e-12)
		assertRel(t, "om", args.om, tc.om, 1e-12)
	}
}

func TestFundamentalArgsOrdering(t *testing.T) {
	const tdb = 0.123
	fa := fundamentalArgsIERS03(tdb)
	args := delaunayIERS03(tdb)
	if fa[0] != args.l || fa[1] != args.lp || fa[2] != args.f || fa[3] != args.d || fa[4] != args.om {
		t.Fatalf("Delaunay arguments out of order: %v vs %+v", fa, args)
	}
	if fa[5] != venusLongitudeIERS03(tdb) {
		t.Errorf("fa[5] = %g, want Venus longitude %g", fa[5], venusLongitudeIERS03(tdb))
	}
	if fa[6] != earthLongitudeIERS03(tdb) {
		t.Errorf("fa[6] = %g, want Earth longitude %g", fa[6], earthLongitudeIERS03(tdb))
	}
	if fa[7] != generalPrecessionIERS03(tdb) {
		t.Errorf("fa[7] = %g, want general precession %g", fa[7], generalPrecessionIERS03(tdb))
	}
}
