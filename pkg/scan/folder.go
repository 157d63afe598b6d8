package scan

import (
	"path/filepath"
	"strings"

	"github.com/mhoutman/romsort/pkg/format"
)

// FolderKind names the detection rule that matched a directory.
type FolderKind string

const (
	// FolderNone means the directory is not a folder-based game
	FolderNone FolderKind = ""
	// FolderMultiDisc is two or more disc images of one container kind
	FolderMultiDisc FolderKind = "multi-disc"
	// FolderCueBin is a cue sheet with its binary track files
	FolderCueBin FolderKind = "cue-bin"
	// FolderArcade is a CHD plus archive combination
	FolderArcade FolderKind = "arcade"
	// FolderPlaylist is an m3u playlist with at least one disc file
	FolderPlaylist FolderKind = "playlist"
)

// Rank returns the format score of the folder game as a unit.
func (k FolderKind) Rank() int {
	switch k {
	case FolderMultiDisc:
		return format.RankMultiDisc
	case FolderCueBin:
		return format.RankCueBinSet
	case FolderArcade:
		return format.RankArcadeCombo
	case FolderPlaylist:
		return format.RankPlaylistSet
	}
	return format.SentinelRank
}

// DetectFolderGame decides whether a directory's direct file listing
// constitutes one multi-file logical game. Rules run in order, first
// match wins:
//
//	(a) 2+ disc images of one container kind (chd, cue or iso)
//	(b) 1+ cue sheet and 1+ bin track
//	(c) 1+ chd and 1+ zip (arcade sets pairing media with ROM data)
//	(d) an m3u playlist plus at least one disc file
//
// Only file names are inspected, never contents.
func DetectFolderGame(names []string) FolderKind {
	var chd, cue, bin, zip, iso, m3u int
	for _, name := range names {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".chd":
			chd++
		case ".cue":
			cue++
		case ".bin":
			bin++
		case ".zip":
			zip++
		case ".iso":
			iso++
		case ".m3u":
			m3u++
		}
	}

	switch {
	case chd >= 2 || cue >= 2 || iso >= 2:
		return FolderMultiDisc
	case cue >= 1 && bin >= 1:
		return FolderCueBin
	case chd >= 1 && zip >= 1:
		return FolderArcade
	case m3u >= 1 && (chd >= 1 || cue >= 1 || iso >= 1):
		return FolderPlaylist
	}
	return FolderNone
}
