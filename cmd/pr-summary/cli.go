package main

import (
	"github.com/alecthomas/kong"

	"github.com/marcin-skalski/pr-summary/internal/config"
)

type CLI struct {
	Version kong.VersionFlag `help:"Show version information"`
	Config  string           `help:"Path to YAML config file" type:"path" short:"c"`

	Owner         string `help:"Repository owner" short:"o"`
	Repo          string `help:"Repository name" short:"r"`
	PersonalToken string `help:"GitHub personal access token (falls back to 'gh auth token')" short:"t" aliases:"token" env:"GITHUB_TOKEN"`
	PR            int    `help:"Load a specific PR. Mostly used for development purposes" name:"pr"`

	MaxAge      string `help:"Skip PRs older than this (Go duration, default 1440h)" placeholder:"DURATION"`
	AgeBasis    string `help:"Timestamp used for PR age: updated or created (default updated)"`
	CheckSuites *bool  `help:"Also require an incomplete check suite before reporting checks as pending"`
	Format      string `help:"Output format: markdown or pretty (default markdown)" short:"f"`
	APIURL      string `help:"GitHub API root, for GitHub Enterprise" name:"api-url"`
	LogLevel    string `help:"Log level: debug, info, warn, error (default info)"`
	LogFile     string `help:"Also write logs to this file, rotated" type:"path"`
}

func (c *CLI) flags() config.Flags {
	return config.Flags{
		Owner:       c.Owner,
		Repo:        c.Repo,
		Token:       c.PersonalToken,
		PR:          c.PR,
		MaxAge:      c.MaxAge,
		AgeBasis:    c.AgeBasis,
		CheckSuites: c.CheckSuites,
		Format:      c.Format,
		APIURL:      c.APIURL,
		LogLevel:    c.LogLevel,
		LogFile:     c.LogFile,
	}
}
