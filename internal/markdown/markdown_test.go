package markdown

import (
	"strings"
	"testing"
)

type panicRenderer struct{}

func (panicRenderer) Render(string) (string, error) {
	panic("boom")
}

func swapRenderer(t *testing.T, width int, r renderer) {
	t.Helper()

	rendererMu.Lock()
	prev, hadPrev := renderers[width]
	renderers[width] = r
	rendererMu.Unlock()

	t.Cleanup(func() {
		rendererMu.Lock()
		if hadPrev {
			renderers[width] = prev
		} else {
			delete(renderers, width)
		}
		rendererMu.Unlock()
	})
}

func TestRenderRecoversFromRendererPanic(t *testing.T) {
	const renderWidth = 20
	swapRenderer(t, renderWidth, panicRenderer{})

	out := Render(renderWidth, 0, []byte("hello\n"))
	if string(out) != "hello" {
		t.Fatalf("expected fallback to original markdown, got %q", string(out))
	}
}

func TestRenderEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   "} {
		if out := Render(40, 2, []byte(input)); out != nil {
			t.Errorf("Render(%q) = %q, want nil", input, string(out))
		}
	}
}

func TestRenderIndentsLines(t *testing.T) {
	out := string(Render(60, 4, []byte("Pick up groceries.\n\n- milk\n- eggs\n")))

	if !strings.Contains(out, "Pick up groceries.") {
		t.Fatalf("expected paragraph text, got %q", out)
	}
	if !strings.Contains(out, "milk") || !strings.Contains(out, "eggs") {
		t.Fatalf("expected list items, got %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, "    ") {
			t.Errorf("expected 4-space indent, got %q", line)
		}
	}
}
