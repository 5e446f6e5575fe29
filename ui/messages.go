package ui

import "github.com/lepinkainen/spotlight/wallpaper"

// TUI Message Types for extraction progress
type ExtractionStartedMsg struct {
	Total int
}

type FileProcessedMsg struct {
	Outcome wallpaper.Outcome
}

type ExtractionDoneMsg struct {
	Result *wallpaper.Result
	Err    error
}

// DeletionCompleteMsg reports the result of deleting the selected duplicates
type DeletionCompleteMsg struct {
	FilePath string
	Success  bool
	Error    error
}
