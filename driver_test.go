package support

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tebeka/selenium"

	"github.com/wanmail/selenium-support/internal/fakes"
)

func TestSafeFindElement(t *testing.T) {
	wd := &fakes.Driver{}
	el := &fakes.Element{Name: "x"}
	wd.Set(selenium.ByID, "x", el)

	got, err := SafeFindElement(wd, ByID("x"))
	if err != nil {
		t.Fatalf("SafeFindElement() returned error: %v", err)
	}
	if e, ok := got.Get(); !ok || e != selenium.WebElement(el) {
		t.Fatalf("SafeFindElement().Get() = %v, %t; want %v, true", e, ok, el)
	}

	got, err = SafeFindElement(wd, ByID("y"))
	if err != nil {
		t.Fatalf("SafeFindElement() returned error: %v", err)
	}
	if got.IsPresent() {
		t.Fatal("SafeFindElement().IsPresent() = true, want false")
	}

	wd.FindErr = map[string]error{fakes.Key(selenium.ByID, "z"): fakes.ErrUnknown}
	if _, err := SafeFindElement(wd, ByID("z")); !errors.Is(err, fakes.ErrUnknown) {
		t.Fatalf("SafeFindElement() returned error %v, want %v", err, fakes.ErrUnknown)
	}
}

func TestQuietFindElement(t *testing.T) {
	got, err := QuietFindElement(&fakes.Driver{}, ByName("q"))
	if err != nil || got != nil {
		t.Fatalf("QuietFindElement() = %v, %v; want nil, nil", got, err)
	}
}

func TestTexts(t *testing.T) {
	got, err := Texts([]selenium.WebElement{
		&fakes.Element{TextValue: "x"},
		&fakes.Element{TextValue: "y"},
	})
	if err != nil {
		t.Fatalf("Texts() returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, got); diff != "" {
		t.Fatalf("Texts() returned diff (-want/+got):\n%s", diff)
	}
}

func fastAlertRetries(t *testing.T) {
	saved := AlertRetryPolicy
	AlertRetryPolicy.Pause = time.Millisecond
	t.Cleanup(func() { AlertRetryPolicy = saved })
}

func TestAcceptAlert(t *testing.T) {
	fastAlertRetries(t)

	t.Run("open alert", func(t *testing.T) {
		wd := &fakes.Driver{}
		if err := AcceptAlert(wd); err != nil {
			t.Fatalf("AcceptAlert() returned error: %v", err)
		}
		if wd.AcceptCalls != 1 {
			t.Fatalf("AcceptAlert() called the driver %d times, want 1", wd.AcceptCalls)
		}
	})

	t.Run("no alert", func(t *testing.T) {
		wd := &fakes.Driver{AcceptErrs: []error{fakes.ErrNoAlert}}
		err := AcceptAlert(wd)
		if !errors.Is(err, ErrNoAlert) {
			t.Fatalf("AcceptAlert() returned error %v, want ErrNoAlert", err)
		}
		if wd.AcceptCalls != 1 {
			t.Fatalf("AcceptAlert() called the driver %d times, want 1", wd.AcceptCalls)
		}
	})

	t.Run("succeeds on the fourth attempt", func(t *testing.T) {
		wd := &fakes.Driver{AcceptErrs: []error{fakes.ErrUnknown, fakes.ErrUnknown, fakes.ErrUnknown}}
		if err := AcceptAlert(wd); err != nil {
			t.Fatalf("AcceptAlert() returned error: %v", err)
		}
		if wd.AcceptCalls != 4 {
			t.Fatalf("AcceptAlert() called the driver %d times, want 4", wd.AcceptCalls)
		}
	})

	t.Run("gives up after four attempts", func(t *testing.T) {
		wd := &fakes.Driver{AcceptErrs: []error{fakes.ErrUnknown, fakes.ErrUnknown, fakes.ErrUnknown, fakes.ErrUnknown}}
		err := AcceptAlert(wd)
		if !errors.Is(err, ErrOperationFailed) {
			t.Fatalf("AcceptAlert() returned error %v, want ErrOperationFailed", err)
		}
		if wd.AcceptCalls != 4 {
			t.Fatalf("AcceptAlert() called the driver %d times, want 4", wd.AcceptCalls)
		}
	})
}

func TestDismissAlert(t *testing.T) {
	fastAlertRetries(t)

	wd := &fakes.Driver{DismissErrs: []error{fakes.ErrUnknown}}
	if err := DismissAlert(wd); err != nil {
		t.Fatalf("DismissAlert() returned error: %v", err)
	}
	if wd.DismissCalls != 2 || wd.AcceptCalls != 0 {
		t.Fatalf("driver calls = %d dismiss, %d accept; want 2, 0", wd.DismissCalls, wd.AcceptCalls)
	}

	wd = &fakes.Driver{DismissErrs: []error{fakes.ErrNoAlert}}
	if err := DismissAlert(wd); !errors.Is(err, ErrNoAlert) {
		t.Fatalf("DismissAlert() returned error %v, want ErrNoAlert", err)
	}
}
