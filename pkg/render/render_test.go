package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bobbyhiddn/canvaskit/pkg/canvas"
	"github.com/bobbyhiddn/canvaskit/pkg/layout"
)

func testCanvas() *canvas.Canvas {
	return &canvas.Canvas{
		Networks: []*canvas.Network{{
			ID: "net",
			Factories: []*canvas.Factory{{
				ID: "fab",
				Machines: []*canvas.Machine{{
					ID:    "mac",
					Label: "Workers",
					Nodes: []*canvas.Node{
						{ID: "parse", Type: "process", X: 100, Y: 100, Width: 250, Height: 120, Outputs: []string{"validate", "ghost"}},
						{ID: "validate", Type: "decision", X: 460, Y: 100, Width: 250, Height: 120},
					},
				}},
			}},
		}},
	}
}

func TestCollectFrames(t *testing.T) {
	frames := collectFrames(testCanvas())

	if len(frames) != 3 {
		t.Fatalf("collectFrames() = %d frames, want 3", len(frames))
	}
	// Outermost first.
	kinds := []layout.Kind{layout.KindNetwork, layout.KindFactory, layout.KindMachine}
	for i, f := range frames {
		if f.kind != kinds[i] {
			t.Errorf("frame %d kind = %v, want %v", i, f.kind, kinds[i])
		}
	}

	mac := frames[2]
	if mac.x != 100-layout.MachinePadding || mac.y != 100-layout.MachinePadding {
		t.Errorf("machine frame origin = (%v, %v), want (%v, %v)",
			mac.x, mac.y, 100-layout.MachinePadding, 100-layout.MachinePadding)
	}
	if mac.w != 610+2*layout.MachinePadding {
		t.Errorf("machine frame width = %v, want %v", mac.w, 610+2*layout.MachinePadding)
	}
	if mac.label != "Workers" {
		t.Errorf("machine frame label = %q, want %q", mac.label, "Workers")
	}
}

func TestCollectFrames_EmptyContainersSkipped(t *testing.T) {
	c := &canvas.Canvas{Networks: []*canvas.Network{{ID: "empty"}}}
	if frames := collectFrames(c); len(frames) != 0 {
		t.Errorf("collectFrames() = %d frames, want 0", len(frames))
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(testCanvas(), DefaultTheme(), &buf); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<svg",
		"</svg>",
		">parse</text>",
		">validate</text>",
		">Workers</text>",
		canvas.StyleFor("process").BorderColor,
		DefaultTheme().Background,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteSVG() output missing %q", want)
		}
	}

	// One connector for parse -> validate; the dangling reference to
	// "ghost" draws nothing.
	if got := strings.Count(out, "<path"); got != 1 {
		t.Errorf("WriteSVG() drew %d connectors, want 1", got)
	}
}

func TestWriteSVG_DocumentBackgroundWins(t *testing.T) {
	c := testCanvas()
	c.Background = "#222222"

	var buf bytes.Buffer
	if err := WriteSVG(c, DefaultTheme(), &buf); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}
	if !strings.Contains(buf.String(), "#222222") {
		t.Error("WriteSVG() ignored the document background")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(testCanvas(), DefaultTheme(), &buf); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}

	sig := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(buf.Bytes(), sig) {
		t.Error("WritePNG() output is not a PNG")
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testCanvas())

	for _, want := range []string{
		"digraph canvas {",
		"rankdir=LR;",
		`subgraph cluster_0`,
		`label="Workers";`,
		`"parse" [label="parse"`,
		`"parse" -> "validate";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "ghost") {
		t.Error("ToDOT() kept an edge to a missing node")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8pt" height="6pt" viewBox="0.00 0.00 100.75 60.25">`)

	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 100.75 60.25"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if !strings.Contains(out, `width="101"`) || !strings.Contains(out, `height="60"`) {
		t.Errorf("normalizeViewBox() size = %s", out)
	}
}
