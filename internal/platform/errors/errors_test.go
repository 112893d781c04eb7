package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestCodeOfAndHTTPStatus(t *testing.T) {
	err := Validationf("text is required")
	if CodeOf(err) != ErrorCodeValidation {
		t.Fatalf("code = %v", CodeOf(err))
	}
	if HTTPStatus(err) != http.StatusBadRequest {
		t.Fatalf("status = %d", HTTPStatus(err))
	}
	if HTTPStatus(InvalidArgf("bad")) != http.StatusUnprocessableEntity {
		t.Fatalf("invalid arg status = %d", HTTPStatus(InvalidArgf("bad")))
	}

	if HTTPStatus(errors.New("opaque")) != http.StatusInternalServerError {
		t.Fatalf("opaque errors must map to 500")
	}
}

func TestWrapPreservesRoot(t *testing.T) {
	root := errors.New("boom")
	err := Wrap(root, ErrorCodeUnavailable, "downstream failed")

	if !errors.Is(err, root) {
		t.Fatalf("wrapped error lost its cause")
	}
	if Root(err) != root {
		t.Fatalf("Root = %v", Root(err))
	}
	if !IsCode(err, ErrorCodeUnavailable) {
		t.Fatalf("code lost in wrap")
	}
}

func TestWithFieldCopies(t *testing.T) {
	base := Validationf("bad value")
	withField := WithField(base, "text")

	e, ok := As(withField)
	if !ok {
		t.Fatalf("expected *Error")
	}
	if e.Field() != "text" {
		t.Fatalf("field = %q", e.Field())
	}
	orig, _ := As(base)
	if orig.Field() != "" {
		t.Fatalf("WithField mutated the original")
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(WithField(Validationf("text is required"), "text"))
	if w.Code != ErrorCodeValidation || w.Field != "text" || w.Message == "" {
		t.Fatalf("wire = %+v", w)
	}

	w = WireFrom(errors.New("opaque"))
	if w.Code != ErrorCodeUnknown {
		t.Fatalf("opaque wire code = %v", w.Code)
	}
}
