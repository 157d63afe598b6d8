// Package format ranks ROM file extensions by desirability within their
// system family. The tables are ordered: iteration order is the
// deterministic tie-break for equal scores.
package format

import (
	"fmt"
	"strings"

	"github.com/mhoutman/romsort/pkg/models"
)

// SentinelRank is the score of an extension no table lists. Entries
// carrying it only ever compete against same-extension siblings.
const SentinelRank = 0

// extRank pairs one extension with its score inside a family table.
// Higher scores are better; archives rank lowest, native uncompressed
// formats highest.
type extRank struct {
	Ext  string
	Rank int
}

// familyTable is the ordered preference table of one system family.
type familyTable struct {
	Family models.SystemFamily
	Exts   []extRank
}

// familyTables holds every known extension in preference order. The
// order across and within tables defines the tie-break: when two
// entries score equal, the earlier-listed extension wins.
var familyTables = []familyTable{
	{models.FamilyNintendo, []extRank{
		{".nes", 10}, {".sfc", 10}, {".snes", 10}, {".gb", 10}, {".gbc", 10},
		{".gba", 10}, {".n64", 10}, {".z64", 10}, {".nds", 10}, {".3ds", 10},
		{".gcm", 10}, {".xci", 10}, {".min", 10}, {".vb", 10},
		{".fds", 9}, {".smc", 9}, {".sgb", 9}, {".dmg", 9}, {".agb", 9},
		{".v64", 9}, {".dsi", 9}, {".cia", 9}, {".tgc", 9}, {".nsp", 9},
		{".unif", 8}, {".unf", 8}, {".bs", 8}, {".gbx", 8}, {".mb", 8},
		{".u64", 8}, {".ids", 8}, {".3dsx", 8}, {".ciso", 8}, {".nro", 8},
		{".swc", 8}, {".wad", 8},
		{".gcz", 7}, {".cci", 7}, {".fig", 7}, {".nca", 7},
		{".nsf", 6}, {".spc", 6}, {".wbfs", 6}, {".rvz", 6}, {".mgd", 6},
		{".nkit", 5},
	}},
	{models.FamilySega, []extRank{
		{".md", 10}, {".gen", 10}, {".sms", 10}, {".gg", 10}, {".32x", 10},
		{".smd", 9}, {".32c", 9},
		{".sg", 8}, {".sgd", 8}, {".sc", 8},
	}},
	{models.FamilySony, []extRank{
		{".psx", 9}, {".pbp", 9}, {".ps2", 9},
		{".psv", 8}, {".prx", 8}, {".elf", 8}, {".pkg", 8}, {".vpk", 8},
		{".cso", 7},
		{".dax", 6}, {".ecm", 6},
		{".psf", 5},
	}},
	{models.FamilyNEC, []extRank{
		{".pce", 10},
		{".sgx", 9}, {".tg16", 9},
		{".huc", 8},
		{".hes", 6},
	}},
	{models.FamilySNK, []extRank{
		{".neo", 10}, {".aes", 10}, {".ngp", 10}, {".ngpc", 10},
		{".mvs", 9}, {".ngm", 9}, {".ngc", 9},
		{".mame", 8}, {".pocket", 8},
	}},
	{models.FamilyAtari, []extRank{
		{".a26", 10}, {".a78", 10}, {".lnx", 10}, {".jag", 10}, {".st", 10},
		{".lyx", 9}, {".j64", 9}, {".stx", 9}, {".xex", 9},
		{".abs", 8}, {".atr", 8}, {".car", 8}, {".msa", 8},
		{".cof", 7}, {".dim", 7},
	}},
	{models.FamilyXbox, []extRank{
		{".xbe", 9},
		{".xiso", 8},
		{".god", 7},
		{".xbla", 6}, {".dvd", 6},
	}},
	{models.FamilyComputer, []extRank{
		{".woz", 10}, {".d64", 10}, {".adf", 10},
		{".t64", 9}, {".d81", 9}, {".tap", 9}, {".z80", 9}, {".sna", 9},
		{".ipf", 9}, {".dsk", 9}, {".cpc", 9}, {".msx", 9}, {".apple2", 9},
		{".prg", 8}, {".g64", 8}, {".x64", 8}, {".tzx", 8}, {".scl", 8},
		{".trd", 8}, {".dms", 8}, {".hdf", 8}, {".cas", 8}, {".ima", 8},
		{".oric", 8}, {".sam", 8},
		{".p00", 7}, {".cdt", 7}, {".lha", 7}, {".vfd", 7},
		{".wav", 6},
	}},
	{models.FamilyDisc, []extRank{
		{".chd", 9}, {".iso", 9},
		{".cue", 8}, {".gdi", 8},
		{".mds", 7}, {".ccd", 7}, {".cdi", 7},
		{".mdf", 6}, {".toc", 6},
		{".nrg", 5}, {".m3u", 5},
		{".dat", 4}, {".lst", 4},
	}},
	{models.FamilyGeneric, []extRank{
		{".rom", 5}, {".bin", 5}, {".img", 5}, {".raw", 5},
		{".int", 10}, {".col", 10}, {".vec", 10}, {".o2", 10},
		{".itv", 9}, {".cv", 9},
		{".gam", 8}, {".dol", 9}, {".bios", 8},
	}},
	{models.FamilyArchive, []extRank{
		{".zip", 1}, {".7z", 1}, {".rar", 1},
		{".gz", 2}, {".bz2", 2},
	}},
}

// Folder-game ranks. A compound set like a cue sheet with its binary
// tracks is worth more than any lone disc image in the same group.
const (
	RankMultiDisc   = 11
	RankCueBinSet   = 11
	RankArcadeCombo = 10
	RankPlaylistSet = 10
)

// saveExtensions are recognized emulator save and snapshot files. A ROM
// with a sibling save file is promoted above save-less siblings during
// duplicate resolution.
var saveExtensions = func() map[string]bool {
	m := map[string]bool{
		".srm": true, ".sav": true, ".rtc": true, ".fla": true,
	}
	// Numbered snapshot slots: generic, FCE Ultra, ZSNES, SNES9x,
	// VisualBoy and DeSmuME state files.
	for _, prefix := range []string{".st", ".fc", ".zs", ".sm", ".vb", ".ds"} {
		for d := 0; d <= 9; d++ {
			m[fmt.Sprintf("%s%d", prefix, d)] = true
		}
	}
	return m
}()

var (
	rankByExt   = make(map[string]int)
	familyByExt = make(map[string]models.SystemFamily)
	orderByExt  = make(map[string]int)
)

func init() {
	pos := 0
	for _, table := range familyTables {
		for _, er := range table.Exts {
			if _, dup := rankByExt[er.Ext]; dup {
				continue
			}
			rankByExt[er.Ext] = er.Rank
			familyByExt[er.Ext] = table.Family
			orderByExt[er.Ext] = pos
			pos++
		}
	}
}

// Normalize lowercases an extension and ensures the leading dot.
func Normalize(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Rank returns the format score of an extension, or SentinelRank when no
// table lists it.
func Rank(ext string) int {
	return rankByExt[Normalize(ext)]
}

// FamilyOf returns the system family of an extension, or FamilyUnknown.
func FamilyOf(ext string) models.SystemFamily {
	if f, ok := familyByExt[Normalize(ext)]; ok {
		return f
	}
	return models.FamilyUnknown
}

// Order returns the tie-break position of an extension: its index in
// table iteration order. Unknown extensions sort after every listed one.
func Order(ext string) int {
	if o, ok := orderByExt[Normalize(ext)]; ok {
		return o
	}
	return len(orderByExt)
}

// IsSave reports whether the extension belongs to a save or snapshot
// file.
func IsSave(ext string) bool {
	return saveExtensions[Normalize(ext)]
}

// IsROM reports whether the extension is a known ROM format. Save files
// are not ROMs even though they sit in the same directories.
func IsROM(ext string) bool {
	n := Normalize(ext)
	if saveExtensions[n] {
		return false
	}
	_, ok := rankByExt[n]
	return ok
}
