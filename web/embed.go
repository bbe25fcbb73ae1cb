package web

import "embed"

// StaticFS embeds the single-page query UI.
//
//go:embed static/*
var StaticFS embed.FS
