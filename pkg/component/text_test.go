package component

import (
	"reflect"
	"testing"

	"tessera/pkg/style"
)

func wrapped(text string, width float64, rs *style.Resolved) []string {
	return wrapText(text, width, 10, charMetrics(10), rs)
}

func TestWrapGreedy(t *testing.T) {
	rs := style.Resolve(nil, nil)

	got := wrapped("hello world foo", 100, rs)
	want := []string{"hello", "world foo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrap = %q, want %q", got, want)
	}
}

func TestWrapKeepsOversizedWord(t *testing.T) {
	rs := style.Resolve(nil, nil)

	got := wrapped("hi extraordinarily so", 100, rs)
	// The long word overflows its line but is not split by default.
	want := []string{"hi", "extraordinarily", "so"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrap = %q, want %q", got, want)
	}
}

func TestWrapBreakWord(t *testing.T) {
	rs := style.Resolve(nil, nil)
	rs.OverflowWrap = style.OverflowWrapBreakWord

	got := wrapped("abcdefghijklmno", 100, rs)
	want := []string{"abcdefghij", "klmno"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("breakWord = %q, want %q", got, want)
	}
}

func TestWrapNoWrap(t *testing.T) {
	rs := style.Resolve(nil, nil)
	rs.WhiteSpace = style.WhiteSpaceNoWrap

	got := wrapped("hello world foo bar", 50, rs)
	if len(got) != 1 || got[0] != "hello world foo bar" {
		t.Errorf("nowrap keeps one line, got %q", got)
	}
}

func TestWrapExplicitNewlines(t *testing.T) {
	rs := style.Resolve(nil, nil)

	got := wrapped("one\ntwo three", 200, rs)
	want := []string{"one", "two three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("newlines always break, got %q", got)
	}
}

func TestWrapEmpty(t *testing.T) {
	rs := style.Resolve(nil, nil)
	got := wrapped("", 100, rs)
	if len(got) != 1 || got[0] != "" {
		t.Errorf("empty text yields one empty line, got %q", got)
	}
}

func TestTruncateEllipsis(t *testing.T) {
	got := truncateLine("abcdefghijklmno", 100, 10, charMetrics(10), style.TextOverflowEllipsis)
	if got != "abcdefghi…" {
		t.Errorf("ellipsis = %q", got)
	}

	got = truncateLine("short", 100, 10, charMetrics(10), style.TextOverflowEllipsis)
	if got != "short" {
		t.Errorf("fitting lines untouched, got %q", got)
	}
}

func TestTruncateClip(t *testing.T) {
	got := truncateLine("abcdefghijklmno", 100, 10, charMetrics(10), style.TextOverflowClip)
	if got != "abcdefghijklmno" {
		t.Errorf("clip leaves the line to the renderer, got %q", got)
	}
}
