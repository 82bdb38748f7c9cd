// Package server wires the HTTP surface over the task store.
package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"todoweb/internal/middleware"
	"todoweb/internal/store"
)

// Handler holds the dependencies shared by all route handlers.
type Handler struct {
	store *store.TaskStore
	log   *logrus.Logger
}

// NewHandler returns a Handler backed by the given store.
func NewHandler(s *store.TaskStore, log *logrus.Logger) *Handler {
	return &Handler{store: s, log: log}
}

func (h *Handler) entry(c *gin.Context, name string) *logrus.Entry {
	return h.log.WithFields(logrus.Fields{
		"handler":    name,
		"request_id": middleware.GetRequestID(c),
	})
}

// Index renders the task list page.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"Tasks":   h.store.List(),
		"Version": Version,
	})
}

// AddTask appends the submitted task and redirects home. An empty or
// missing task field is silently ignored.
func (h *Handler) AddTask(c *gin.Context) {
	task := c.PostForm("task")
	if task != "" {
		h.store.Append(task)
		h.entry(c, "AddTask").WithField("count", h.store.Count()).Info("task added")
	}
	c.Redirect(http.StatusFound, "/")
}

// DeleteTask removes the task at the given position and redirects home.
// Out-of-range positions are silently ignored. A non-integer id never
// reaches the store; it gets a 404, matching a router that only accepts
// integer segments.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	h.store.RemoveAt(id)
	h.entry(c, "DeleteTask").WithFields(logrus.Fields{
		"position": id,
		"count":    h.store.Count(),
	}).Info("delete processed")
	c.Redirect(http.StatusFound, "/")
}

// Health reports liveness and the current task count.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"tasks_count": h.store.Count(),
	})
}
