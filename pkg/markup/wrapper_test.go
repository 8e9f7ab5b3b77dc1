package markup_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-patientview/pkg/markup"
)

func TestNewWrapper_DerivesTagMetadata(t *testing.T) {
	cases := []struct {
		tag     string
		name    string
		empty   bool
		opening string
		closing string
	}{
		{tag: `DIV class="x"`, name: "div", opening: `<DIV class="x">`, closing: "</div>"},
		{tag: "br", name: "br", empty: true, opening: "<br>"},
		{tag: `img src="a.png"`, name: "img", empty: true, opening: `<img src="a.png">`},
		{tag: "", name: ""},
	}

	for _, tc := range cases {
		w := markup.NewWrapper(tc.tag)
		got := []any{w.TagName(), w.Empty(), w.OpeningTag(), w.ClosingTag()}
		want := []any{tc.name, tc.empty, tc.opening, tc.closing}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("tag %q metadata mismatch (-want +got):\n%s", tc.tag, diff)
		}
	}
}

func TestRender_VoidElementIgnoresContent(t *testing.T) {
	w := markup.NewWrapper("br", markup.WithCompact(false), markup.WithIndent("    "))

	for _, content := range []any{nil, "text", []string{"a", "b"}, []any{1, 2}} {
		got, err := w.Render(content, markup.RenderOptions{Escape: true, Strip: true})
		if err != nil {
			t.Fatalf("render %v: %v", content, err)
		}
		if got != "<br>" {
			t.Fatalf("expected <br> for %v, got %q", content, got)
		}
	}
}

func TestRender_Escape(t *testing.T) {
	w := markup.NewWrapper("p")

	got, err := w.Render(`<a> & "b"`, markup.RenderOptions{Escape: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "<p>&lt;a&gt; &amp; &quot;b&quot;</p>"; got != want {
		t.Fatalf("escape mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestEscape_SinglePass(t *testing.T) {
	if got, want := markup.Escape("&amp; <"), "&amp;amp; &lt;"; got != want {
		t.Fatalf("escape mismatch: want %q, got %q", want, got)
	}
	if got := markup.Escape("it's fine"); got != "it's fine" {
		t.Fatalf("expected single quotes untouched, got %q", got)
	}
}

func TestRender_CompactVersusIndented(t *testing.T) {
	content := []string{"line1", "line2"}

	compact, err := markup.NewWrapper("div", markup.WithCompact(true)).Render(content, markup.RenderOptions{})
	if err != nil {
		t.Fatalf("compact render: %v", err)
	}
	if compact != "<div>line1line2</div>" {
		t.Fatalf("unexpected compact output %q", compact)
	}

	indented, err := markup.NewWrapper("div", markup.WithCompact(false), markup.WithIndent("  ")).Render(content, markup.RenderOptions{})
	if err != nil {
		t.Fatalf("indented render: %v", err)
	}
	if want := "<div>\n  line1\n  line2\n</div>"; indented != want {
		t.Fatalf("indented mismatch:\nwant %q\ngot  %q", want, indented)
	}
}

func TestRender_StripOnlyAffectsIndentedModeWhenRequested(t *testing.T) {
	w := markup.NewWrapper("pre", markup.WithCompact(false), markup.WithIndent("> "))
	content := "  one  \n\ttwo"

	raw := w.MustRender(content, markup.RenderOptions{})
	if want := "<pre>\n>   one  \n> \ttwo\n</pre>"; raw != want {
		t.Fatalf("unstripped mismatch:\nwant %q\ngot  %q", want, raw)
	}

	stripped := w.MustRender(content, markup.RenderOptions{Strip: true})
	if want := "<pre>\n> one\n> two\n</pre>"; stripped != want {
		t.Fatalf("stripped mismatch:\nwant %q\ngot  %q", want, stripped)
	}

	compact := markup.NewWrapper("span").MustRender(content, markup.RenderOptions{})
	if compact != "<span>onetwo</span>" {
		t.Fatalf("expected compact mode to trim lines, got %q", compact)
	}
}

func TestRender_EmptyContent(t *testing.T) {
	if got := markup.NewWrapper("").MustRender(nil, markup.RenderOptions{}); got != "" {
		t.Fatalf("expected empty output for untagged empty content, got %q", got)
	}
	if got := markup.NewWrapper("div").MustRender("", markup.RenderOptions{}); got != "<div></div>" {
		t.Fatalf("expected bare tag pair, got %q", got)
	}
	indented := markup.NewWrapper("div", markup.WithCompact(false)).MustRender(nil, markup.RenderOptions{})
	if indented != "<div>\n</div>" {
		t.Fatalf("expected tag pair on separate lines, got %q", indented)
	}
}

func TestRender_UntaggedFormatsContentOnly(t *testing.T) {
	w := markup.NewWrapper("", markup.WithCompact(false), markup.WithIndent("  "))
	got := w.MustRender("a\r\nb\n", markup.RenderOptions{})
	if got != "  a\n  b" {
		t.Fatalf("unexpected untagged output %q", got)
	}
}

type label struct{ text string }

func (l label) String() string { return l.text }

func TestRender_StringifiesSequenceElements(t *testing.T) {
	w := markup.NewWrapper("ul", markup.WithCompact(false))
	got := w.MustRender([]any{1, 2.5, true, nil, label{"x"}}, markup.RenderOptions{})
	if want := "<ul>\n1\n2.5\ntrue\n\nx\n</ul>"; got != want {
		t.Fatalf("unexpected output:\nwant %q\ngot  %q", want, got)
	}
}

func TestRender_SplitsMultilineElements(t *testing.T) {
	indented := markup.NewWrapper("div", markup.WithCompact(false), markup.WithIndent("  "))
	got := indented.MustRender([]string{"a\nb", "c"}, markup.RenderOptions{})
	if want := "<div>\n  a\n  b\n  c\n</div>"; got != want {
		t.Fatalf("indented mismatch\nwant %q\ngot  %q", want, got)
	}

	mixed := indented.MustRender([]any{"x\r\n  y", 3}, markup.RenderOptions{Strip: true})
	if want := "<div>\n  x\n  y\n  3\n</div>"; mixed != want {
		t.Fatalf("mixed mismatch\nwant %q\ngot  %q", want, mixed)
	}

	compact := markup.NewWrapper("p").MustRender([]string{" a \n b "}, markup.RenderOptions{})
	if compact != "<p>ab</p>" {
		t.Fatalf("expected compact lines trimmed, got %q", compact)
	}
}

type ward string

func TestRender_AcceptsTypedSequences(t *testing.T) {
	w := markup.NewWrapper("ol", markup.WithCompact(false))

	if got, want := w.MustRender([]int{1, 2}, markup.RenderOptions{}), "<ol>\n1\n2\n</ol>"; got != want {
		t.Fatalf("slice mismatch\nwant %q\ngot  %q", want, got)
	}
	if got, want := w.MustRender([2]float64{0.5, 1}, markup.RenderOptions{}), "<ol>\n0.5\n1\n</ol>"; got != want {
		t.Fatalf("array mismatch\nwant %q\ngot  %q", want, got)
	}
	if got, want := w.MustRender(ward("east\nwest"), markup.RenderOptions{}), "<ol>\neast\nwest\n</ol>"; got != want {
		t.Fatalf("named string mismatch\nwant %q\ngot  %q", want, got)
	}
}

type blankSanitizer struct{}

func (blankSanitizer) Sanitize(string) string { return "" }

func TestRender_SanitizerRemovingEverything(t *testing.T) {
	indented := markup.NewWrapper("div", markup.WithCompact(false), markup.WithSanitizer(blankSanitizer{}))
	if got := indented.MustRender("<script>x</script>", markup.RenderOptions{}); got != "<div>\n</div>" {
		t.Fatalf("expected empty element, got %q", got)
	}

	compact := markup.NewWrapper("div", markup.WithSanitizer(blankSanitizer{}))
	if got := compact.MustRender("<script>x</script>", markup.RenderOptions{}); got != "<div></div>" {
		t.Fatalf("expected empty element, got %q", got)
	}
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	content := []string{" <b> ", "&"}
	snapshot := append([]string(nil), content...)

	markup.NewWrapper("div").MustRender(content, markup.RenderOptions{Escape: true, Strip: true})

	if diff := cmp.Diff(snapshot, content); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestRender_UnsupportedContent(t *testing.T) {
	_, err := markup.NewWrapper("div").Render(map[string]int{"a": 1}, markup.RenderOptions{})
	if !errors.Is(err, markup.ErrUnsupportedContent) {
		t.Fatalf("expected ErrUnsupportedContent, got %v", err)
	}
}

func TestRender_SanitizerAppliesToUnescapedContent(t *testing.T) {
	w := markup.NewWrapper(`div class="note"`, markup.WithSanitizer(markup.UGCSanitizer()))

	got := w.MustRender(`<b>stable</b><script>alert(1)</script>`, markup.RenderOptions{})
	if strings.Contains(got, "script") {
		t.Fatalf("expected script removed, got %q", got)
	}
	if !strings.Contains(got, "<b>stable</b>") {
		t.Fatalf("expected formatting preserved, got %q", got)
	}

	escaped := w.MustRender(`<b>x</b>`, markup.RenderOptions{Escape: true})
	if escaped != `<div class="note">&lt;b&gt;x&lt;/b&gt;</div>` {
		t.Fatalf("expected escaping to bypass sanitizer, got %q", escaped)
	}
}
