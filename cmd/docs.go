package cmd

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// child with children
const childParentPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
has_children: true
---
`

// grandchildren
const grandchildPage = `---
layout: default
title: %s
parent: %s
grand_parent: %s
nav_order: %d
---
`

// docType codes whether the command is a grandchild, child, etc
type docType int

const (
	root docType = iota
	child
	childParent
	grandchild
)

// meta is for describing the position/info for a command doc page
type meta struct {
	docType     docType
	title       string
	navOrder    int
	hasChildren bool
	parent      string
	grandParent string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"clonecalc": {
		root,
		"clonecalc",
		0,
		true,
		"",
		"",
	},
	"clonecalc_volumes": {
		child,
		"volumes",
		0,
		false,
		"clonecalc",
		"",
	},
	"clonecalc_convert": {
		childParent,
		"convert",
		1,
		true,
		"clonecalc",
		"",
	},
	"clonecalc_convert_mass": {
		grandchild,
		"mass",
		0,
		false,
		"convert",
		"clonecalc",
	},
	"clonecalc_convert_moles": {
		grandchild,
		"moles",
		1,
		false,
		"convert",
		"clonecalc",
	},
	"clonecalc_set": {
		child,
		"set",
		2,
		false,
		"clonecalc",
		"",
	},
}

// docsCmd generates the Markdown documentation pages
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		if err := doc.GenMarkdownTreeCustom(rootCmd, "./docs", filePrepender, linkHandler); err != nil {
			fmt.Println(err.Error())
		}
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m := metaMap[base]

	switch m.docType {
	case root:
		return fmt.Sprintf(rootPage, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childPage, m.title, m.parent, m.navOrder)
	case childParent:
		return fmt.Sprintf(childParentPage, m.title, m.parent, m.navOrder)
	case grandchild:
		return fmt.Sprintf(grandchildPage, m.title, m.parent, m.grandParent, m.navOrder)
	}

	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "clonecalc" {
		return "/"
	}
	return base
}
