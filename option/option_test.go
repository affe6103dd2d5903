package option_test

import (
	"testing"

	"github.com/cda-tum/mmft-routing-block-channel-router/option"
)

func TestNoneIsInvalid(t *testing.T) {
	o := option.None[int]()
	if _, ok := o.Get(); ok {
		t.Errorf("expected a None option to report ok=false")
	}
}

func TestSome(t *testing.T) {
	o := option.Some(42)
	v, ok := o.Get()
	if !ok {
		t.Fatalf("expected a Some option to report ok=true")
	}
	if v != 42 {
		t.Errorf("Get() = %d, expected 42", v)
	}
}

func TestSet(t *testing.T) {
	var o option.Option[string]
	if _, ok := o.Get(); ok {
		t.Errorf("expected the zero value Option to report ok=false")
	}

	o.Set("hello")
	v, ok := o.Get()
	if !ok || v != "hello" {
		t.Errorf("Get() = (%q, %v), expected (\"hello\", true)", v, ok)
	}
}
