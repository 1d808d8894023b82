package cmd

import "github.com/ardnew/ditto/lang"

var (
	ErrOpenSource  = lang.NewError("open source file")
	ErrWriteOutput = lang.NewError("write output file")
	ErrYAMLMarshal = lang.NewError("marshal YAML")
)
