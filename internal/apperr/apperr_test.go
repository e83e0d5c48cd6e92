package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Invalid("status %q", "x"), http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", ErrSignedOut), http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{Fail("저장 실패", errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := Status(c.err); got != c.want {
			t.Errorf("Status(%v)=%d, want %d", c.err, got, c.want)
		}
	}
}

func TestMessagePrefersFailureText(t *testing.T) {
	cause := errors.New("googleapi: 500")
	err := fmt.Errorf("add: %w", Fail("데이터를 저장하는 중 오류가 발생했습니다", cause))
	if got := Message(err); got != "데이터를 저장하는 중 오류가 발생했습니다" {
		t.Fatalf("Message=%q", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause lost")
	}
	if got := Message(errors.New("plain")); got != "plain" {
		t.Fatalf("Message=%q, want plain", got)
	}
}
