package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/internal/service/app"
	"github.com/sandevgo/argand/internal/service/plot"
	"github.com/sandevgo/argand/pkg/conv"
	"github.com/sandevgo/argand/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

const planeSize = 420

type page struct {
	tmpl *template.Template
}

func newPage() (*page, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"markdown": func(s string) template.HTML {
			return template.HTML(conv.MarkdownToHTML([]byte(s)))
		},
		"root": plot.FormatRoot,
		"when": func(ms int64) string {
			return time.UnixMilli(ms).Format("02/01/2006 15:04")
		},
	}).ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &page{tmpl: tmpl}, nil
}

type pageData struct {
	State    app.Snapshot
	Busy     bool
	Input    string
	Notice   string
	Examples []core.Example
	History  []core.HistoryEntry
	Current  *plot.Canvas
	Combined plot.Canvas
}

func (s *Server) pageData(input, notice string) pageData {
	state := s.ctrl.State()
	d := pageData{
		State:    state,
		Busy:     s.ctrl.Busy(),
		Input:    input,
		Notice:   notice,
		Examples: s.ctrl.Examples(),
		History:  s.ctrl.CurrentHistory(),
		Combined: plot.NewCanvas(s.ctrl.AggregatedRoots(), planeSize),
	}
	if d.Input == "" {
		d.Input = state.Equation
	}
	if state.Solution != nil {
		cv := plot.NewCanvas(state.Solution.Roots, planeSize)
		d.Current = &cv
	}
	return d
}

func (s *Server) render(c *gin.Context, status int, d pageData) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.page.tmpl.Execute(c.Writer, d); err != nil {
		log.FromCtx(c.Request.Context()).Error().Err(err).Msg("failed to render page")
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	input := c.Query("equation")
	s.render(c, http.StatusOK, s.pageData(input, ""))
}

func (s *Server) handleSolveForm(c *gin.Context) {
	equation := c.PostForm("equation")

	if _, err := s.ctrl.SubmitEquation(c.Request.Context(), equation); err != nil {
		status, resp := errorStatus(err)
		s.render(c, status, s.pageData(equation, resp.Error))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handlePurgeForm(c *gin.Context) {
	if c.PostForm("confirm") != "on" {
		s.render(c, http.StatusBadRequest, s.pageData("", "Cochez la case de confirmation pour effacer l'historique."))
		return
	}
	s.ctrl.PurgeHistory(c.Request.Context())
	c.Redirect(http.StatusSeeOther, "/")
}
