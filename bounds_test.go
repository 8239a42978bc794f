package geoutil_test

import (
	"testing"

	"github.com/tzneal/geoutil"
)

func TestBoundsUnset(t *testing.T) {
	b := geoutil.NewCoordinateBounds()
	if b.IsSet() {
		t.Fatalf("expected unset bounds")
	}
	if nw := b.Northwest(); nw != geoutil.NewCoordinate(90, -180) {
		t.Errorf("expected maximum northwest corner, got %s", nw)
	}
	if se := b.Southeast(); se != geoutil.NewCoordinate(-85, 180) {
		t.Errorf("expected maximum southeast corner, got %s", se)
	}
	if b.Northwest() != geoutil.MaximumBounds.Northwest() || b.Southeast() != geoutil.MaximumBounds.Southeast() {
		t.Errorf("expected unset bounds to report MaximumBounds")
	}

	var zero geoutil.CoordinateBounds
	if zero.IsSet() || zero.Southwest() != geoutil.NewCoordinate(-85, -180) {
		t.Errorf("expected zero value to be unset, got %s", zero.String())
	}
}

func TestBoundsGrow(t *testing.T) {
	b := geoutil.NewCoordinateBounds()
	b.GrowToInclude(geoutil.NewCoordinate(10, 20))
	if !b.IsSet() {
		t.Fatalf("expected set bounds")
	}
	if b.Northwest() != geoutil.NewCoordinate(10, 20) || b.Southeast() != geoutil.NewCoordinate(10, 20) {
		t.Errorf("expected degenerate box at 10,20, got %s", b)
	}

	b.GrowToInclude(geoutil.NewCoordinate(-5, 30))
	b.GrowToInclude(geoutil.NewCoordinate(15, 25))
	if nw := b.Northwest(); nw != geoutil.NewCoordinate(15, 20) {
		t.Errorf("expected northwest 15,20, got %s", nw)
	}
	if se := b.Southeast(); se != geoutil.NewCoordinate(-5, 30) {
		t.Errorf("expected southeast -5,30, got %s", se)
	}
	if sw := b.Southwest(); sw != geoutil.NewCoordinate(-5, 20) {
		t.Errorf("expected southwest -5,20, got %s", sw)
	}
	if ne := b.Northeast(); ne != geoutil.NewCoordinate(15, 30) {
		t.Errorf("expected northeast 15,30, got %s", ne)
	}
	if c := b.Center(); c != geoutil.NewCoordinate(5, 25) {
		t.Errorf("expected center 5,25, got %s", c)
	}

	// including an interior point changes nothing
	b.GrowToInclude(geoutil.NewCoordinate(0, 22))
	if b.Northwest() != geoutil.NewCoordinate(15, 20) || b.Southeast() != geoutil.NewCoordinate(-5, 30) {
		t.Errorf("expected unchanged box, got %s", b)
	}

	if got := b.Format(0); got != "15,20,-5,30" {
		t.Errorf("unexpected format %s", got)
	}
}

func TestBoundsContains(t *testing.T) {
	b := geoutil.NewCoordinateBoundsFrom(
		geoutil.NewCoordinate(10, 20),
		geoutil.NewCoordinate(-10, -20),
	)
	testCases := []struct {
		c  geoutil.Coordinate
		in bool
	}{
		{geoutil.NewCoordinate(0, 0), true},
		{geoutil.NewCoordinate(10, 20), true},
		{geoutil.NewCoordinate(-10, 20), true},
		{geoutil.NewCoordinate(10.0001, 0), false},
		{geoutil.NewCoordinate(0, -20.0001), false},
	}
	for _, tc := range testCases {
		if got := b.Contains(tc.c); got != tc.in {
			t.Errorf("Contains(%s): expected %t, got %t", tc.c, tc.in, got)
		}
	}

	if !geoutil.NewCoordinateBounds().Contains(geoutil.NewCoordinate(-85, 0)) {
		t.Errorf("expected unset bounds to contain the maximum range")
	}
	if geoutil.NewCoordinateBounds().Contains(geoutil.NewCoordinate(-89, 0)) {
		t.Errorf("expected unset bounds to exclude latitudes below -85")
	}
}

func TestBoundsAntimeridian(t *testing.T) {
	b := geoutil.NewCoordinateBoundsFrom(
		geoutil.NewCoordinate(0, 179),
		geoutil.NewCoordinate(0, -179),
	)
	// the box spans the long way around
	if !b.Contains(geoutil.NewCoordinate(0, 0)) {
		t.Errorf("expected box across every longitude between the points")
	}
	if b.Contains(geoutil.NewCoordinate(0, 179.5)) {
		t.Errorf("expected the short way around to be outside the box")
	}
}

func TestUTMLocationBounds(t *testing.T) {
	nw := geoutil.NewUTMLocation(500000, 4600000, geoutil.MustParseZone("18T"))
	se := geoutil.NewUTMLocation(600000, 4500000, geoutil.MustParseZone("18S"))
	b := geoutil.NewUTMLocationBounds(nw, se)

	if sw := b.Southwest(); sw != geoutil.NewUTMLocation(500000, 4500000, se.Zone) {
		t.Errorf("unexpected southwest corner %s", sw)
	}
	if ne := b.Northeast(); ne != geoutil.NewUTMLocation(600000, 4600000, nw.Zone) {
		t.Errorf("unexpected northeast corner %s", ne)
	}
	if got := b.Format(0); got != "500000,4600000,18T,600000,4500000,18S" {
		t.Errorf("unexpected format %s", got)
	}
}
