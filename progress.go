package puffin

import puffincore "github.com/meigma/puffin/core"

// Re-export progress types from core package.
type (
	// ProgressEvent represents a progress update while loading or inspecting an archive.
	ProgressEvent = puffincore.ProgressEvent

	// ProgressStage identifies the current phase of an inspection.
	ProgressStage = puffincore.ProgressStage

	// ProgressFunc receives progress updates.
	// Implementations must be safe for concurrent calls when used with InspectAll.
	ProgressFunc = puffincore.ProgressFunc
)

// Re-export progress stage constants.
const (
	// StageLoading indicates archive bytes are being read into memory.
	StageLoading = puffincore.StageLoading

	// StageLocating indicates the directory is being searched for.
	StageLocating = puffincore.StageLocating

	// StageDecoding indicates the directory is being decoded.
	StageDecoding = puffincore.StageDecoding

	// StageExtracting indicates blobs are being extracted and interpreted.
	StageExtracting = puffincore.StageExtracting

	// StageAnalyzing indicates the index metadata is being analyzed.
	StageAnalyzing = puffincore.StageAnalyzing
)
