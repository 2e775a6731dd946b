package main

import (
	"html/template"
	"io"

	"github.com/gin-gonic/gin"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	"github.com/tavsec/gin-healthcheck/config"
)

// templateCheck passes while the page still renders without error.
type templateCheck struct {
	tmpl *template.Template
	site Portfolio
}

func (t templateCheck) Pass() bool {
	return renderPage(io.Discard, t.tmpl, t.site) == nil
}

func (templateCheck) Name() string {
	return "templates"
}

type contentCheck struct {
	site Portfolio
}

func (c contentCheck) Pass() bool {
	return validateContent(c.site) == nil
}

func (contentCheck) Name() string {
	return "content"
}

func setupHealthCheck(r *gin.Engine, tmpl *template.Template, p Portfolio) error {
	return healthcheck.New(r, config.DefaultConfig(), []checks.Check{
		templateCheck{tmpl: tmpl, site: p},
		contentCheck{site: p},
	})
}
