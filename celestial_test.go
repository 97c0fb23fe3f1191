package lambert

import "testing"

func TestCelestialObjectFromString(t *testing.T) {
	for _, body := range []CelestialObject{Sun, Venus, Earth, Mars, Jupiter, Saturn, Uranus} {
		got, err := CelestialObjectFromString(body.Name)
		if err != nil {
			t.Fatalf("err %s", err)
		}
		if !got.Equals(body) {
			t.Fatalf("got %s instead of %s", got, body)
		}
		if got.GM() <= 0 {
			t.Fatalf("%s has no μ", got)
		}
	}
	if _, err := CelestialObjectFromString("EARTH"); err != nil {
		t.Fatal("names should be case insensitive")
	}
	if _, err := CelestialObjectFromString("Vulcan"); err == nil {
		t.Fatal("err should not be nil for an unknown object")
	}
	if Earth.String() != "Earth body" {
		t.Fatalf("incorrect string %s", Earth)
	}
	custom := NewCelestialObject("Moon", 1737.4, 4902.8)
	if custom.Equals(Earth) || custom.GM() != 4902.8 {
		t.Fatal("incorrect custom object")
	}
}
