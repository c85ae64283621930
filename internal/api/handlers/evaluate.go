// Package handlers holds the gin handler(s) cmd/ctrlplayd exposes.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ctrlplay/internal/diagram"
	"ctrlplay/internal/eval"
	"ctrlplay/internal/hostenv"
	"ctrlplay/internal/value"
)

// EvaluateRequest is the request body for POST /evaluate: a program
// plus the named CSV blobs its load() calls may reach for, the JSON
// transport's stand-in for the browser File API a hosted UI would use.
type EvaluateRequest struct {
	Source string            `json:"source" binding:"required"`
	Files  map[string]string `json:"files"`
}

// outputView is the JSON projection of one value.Output: Kind names the
// variant, mirroring the closed OutputKind, and only that variant's
// fields are set (Diagram and DiagramID together for a diagram).
type outputView struct {
	Kind string `json:"kind"`

	Error     string      `json:"error,omitempty"`
	Text      string      `json:"text,omitempty"`
	Plot      [][]float64 `json:"plot,omitempty"`
	Diagram   string      `json:"diagram,omitempty"`
	DiagramID string      `json:"diagramId,omitempty"`
}

// Evaluate runs one program against the files supplied in the request
// and returns its Output stream as JSON.
func Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	host := hostenv.MapEnv(req.Files)
	outputs := eval.EvalSource(req.Source, host)

	views := make([]outputView, len(outputs))
	for i, out := range outputs {
		views[i] = toView(out)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"outputs": views,
		"count":   len(views),
	})
}

func toView(out *value.Output) outputView {
	switch out.Kind {
	case value.OutputErr:
		return outputView{Kind: "error", Error: out.Err.Error()}
	case value.OutputText:
		return outputView{Kind: "text", Text: out.Text}
	case value.OutputPlot:
		rows := make([][]float64, out.Plot.Rows())
		for r := range rows {
			rows[r] = out.Plot.Row(r)
		}
		return outputView{Kind: "plot", Plot: rows}
	case value.OutputSystemDiagram:
		return outputView{Kind: "diagram", Diagram: diagram.Render(out.Diagram), DiagramID: out.Diagram.ID.String()}
	default:
		return outputView{Kind: "unknown"}
	}
}

// Health answers the load balancer's liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
