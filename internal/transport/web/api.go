package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/internal/service/app"
	"github.com/sandevgo/argand/internal/service/plot"
	"github.com/sandevgo/argand/internal/service/solver"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type SolveRequest struct {
	Equation string `json:"equation"`
}

type RootsResponse struct {
	Roots []core.ComplexRoot `json:"roots"`
	Range float64            `json:"range"`
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// errorStatus maps a submission error to its HTTP status, code and message.
func errorStatus(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, app.ErrEmptyEquation):
		return http.StatusBadRequest, ErrorResponse{Error: "Veuillez saisir une équation.", Code: "EMPTY_EQUATION"}
	case errors.Is(err, app.ErrBusy):
		return http.StatusConflict, ErrorResponse{Error: "Une résolution est déjà en cours.", Code: "BUSY"}
	default:
		return http.StatusBadGateway, ErrorResponse{Error: solver.UserMessage(err), Code: "SOLVE_FAILED"}
	}
}

func (s *Server) handleSolve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	out, err := s.ctrl.SubmitEquation(c.Request.Context(), req.Equation)
	if err != nil {
		status, resp := errorStatus(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, out)
}

func (s *Server) handleHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": s.ctrl.CurrentHistory()})
}

func (s *Server) handlePurge(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Purging the history requires confirm=true",
			Code:  "CONFIRMATION_REQUIRED",
		})
		return
	}
	s.ctrl.PurgeHistory(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (s *Server) handleRoots(c *gin.Context) {
	roots := s.ctrl.AggregatedRoots()
	c.JSON(http.StatusOK, RootsResponse{Roots: roots, Range: plot.DomainRange(roots)})
}

func (s *Server) handleExamples(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"examples": s.ctrl.Examples()})
}

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, s.ctrl.State())
}
