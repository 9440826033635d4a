package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	g "maragu.dev/gomponents"
)

func fixedClock(ts string) func() time.Time {
	now, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return now }
}

func renderString(t *testing.T, n g.Node) string {
	t.Helper()

	out, err := Render(n)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return string(out)
}

func parse(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()

	out, err := Render(n)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("failed to parse rendered html: %v", err)
	}
	return doc
}
