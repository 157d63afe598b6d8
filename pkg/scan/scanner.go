// Package scan walks a ROM collection and turns what it finds into
// classified entries: loose ROM files, folder-based multi-disc games,
// and the save files paired with them.
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mhoutman/romsort/pkg/config"
	"github.com/mhoutman/romsort/pkg/format"
	"github.com/mhoutman/romsort/pkg/logging"
	"github.com/mhoutman/romsort/pkg/models"
	"github.com/mhoutman/romsort/pkg/naming"
	"github.com/mhoutman/romsort/pkg/region"
)

// Listing is the immutable scan result the classification core
// consumes. Entries appear in scan order.
type Listing struct {
	Root    string
	Entries []*models.Entry
}

// Scanner produces listings from a directory tree. It reads names and
// stat information only, never file contents.
type Scanner struct {
	cfg      *config.Config
	resolver *region.Resolver
	excluder *Excluder
	logger   logging.Logger
}

// NewScanner builds a scanner for one configuration. The managed output
// folders, every region folder the tool itself creates (canonical
// regions plus Unknown) and any user-configured names are excluded from
// scanning.
func NewScanner(cfg *config.Config, logger logging.Logger) *Scanner {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scanner{
		cfg:      cfg,
		resolver: region.NewResolver(cfg.Regions.Priority, cfg.Regions.Default),
		excluder: NewExcluder(cfg.ManagedFolderNames(), region.Canonical, []string{models.RegionUnknown}, cfg.Scan.Exclude),
		logger:   logger,
	}
}

// Scan walks root and returns the classified listing. Folder-based
// games become one folder-kind entry each; their member files never
// appear independently. Save files are paired with the ROM sharing
// their base name and are never entries themselves.
func (s *Scanner) Scan(ctx context.Context, root string) (*Listing, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve scan root: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("access scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root is not a directory: %s", absRoot)
	}

	listing := &Listing{Root: absRoot}
	if err := s.scanDir(ctx, absRoot, listing); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "scan complete", logging.Fields{
		"root":    absRoot,
		"entries": len(listing.Entries),
	})
	return listing, nil
}

func (s *Scanner) scanDir(ctx context.Context, dir string, listing *Listing) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}

	// First pass: index save files by lowercased stem so ROM entries in
	// this directory can pair with them.
	saves := make(map[string]string)
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		ext := filepath.Ext(d.Name())
		if format.IsSave(ext) {
			stem := strings.TrimSuffix(d.Name(), ext)
			saves[strings.ToLower(stem)] = filepath.Join(dir, d.Name())
		}
	}

	for _, d := range dirents {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		path := filepath.Join(dir, d.Name())
		if d.IsDir() {
			if s.excluder.Excluded(d.Name()) {
				s.logger.Debug(ctx, "skipping excluded folder", logging.Fields{"path": path})
				continue
			}
			if err := s.scanSubdir(ctx, path, d.Name(), listing); err != nil {
				return err
			}
			continue
		}

		ext := filepath.Ext(d.Name())
		if !format.IsROM(ext) {
			continue
		}

		fi, err := d.Info()
		if err != nil {
			s.logger.Warn(ctx, "cannot stat file, skipping", logging.Fields{"path": path, "error": err.Error()})
			continue
		}

		stem := strings.TrimSuffix(d.Name(), ext)
		entry := s.buildFileEntry(path, d.Name(), stem, ext, fi.Size(), len(listing.Entries))
		entry.SavePath = saves[strings.ToLower(stem)]
		listing.Entries = append(listing.Entries, entry)
	}

	return nil
}

// scanSubdir handles one non-excluded directory: folder-game detection
// first, then recursion when subfolder scanning is enabled.
func (s *Scanner) scanSubdir(ctx context.Context, path, name string, listing *Listing) error {
	dirents, err := os.ReadDir(path)
	if err != nil {
		s.logger.Warn(ctx, "cannot read folder, skipping", logging.Fields{"path": path, "error": err.Error()})
		return nil
	}

	var fileNames []string
	var total int64
	for _, d := range dirents {
		if !d.IsDir() {
			fileNames = append(fileNames, d.Name())
			if fi, err := d.Info(); err == nil {
				total += fi.Size()
			}
		}
	}

	if kind := DetectFolderGame(fileNames); kind != FolderNone {
		entry := s.buildFolderEntry(path, name, kind, total, len(listing.Entries))
		listing.Entries = append(listing.Entries, entry)
		s.logger.Debug(ctx, "folder game detected", logging.Fields{
			"path": path,
			"kind": string(kind),
		})
		return nil
	}

	if s.cfg.Scan.Subfolders {
		return s.scanDir(ctx, path, listing)
	}
	return nil
}

func (s *Scanner) buildFileEntry(path, name, stem, ext string, size int64, ordinal int) *models.Entry {
	parsed := naming.Parse(stem)
	ext = format.Normalize(ext)
	return &models.Entry{
		Path:       path,
		Name:       name,
		Kind:       models.KindFile,
		BaseTitle:  parsed.BaseTitle,
		Tags:       parsed.Tags,
		Region:     s.resolver.Resolve(regionsOf(parsed.Tags), parsed.Translated),
		Special:    parsed.Special,
		Revision:   parsed.Revision,
		Ext:        ext,
		Family:     format.FamilyOf(ext),
		FormatRank: format.Rank(ext),
		Size:       size,
		Ordinal:    ordinal,
	}
}

// buildFolderEntry parses base title and tags from the directory name
// itself; member files contribute nothing but the detection signal.
func (s *Scanner) buildFolderEntry(path, name string, kind FolderKind, size int64, ordinal int) *models.Entry {
	parsed := naming.Parse(name)
	return &models.Entry{
		Path:       path,
		Name:       name,
		Kind:       models.KindFolder,
		BaseTitle:  parsed.BaseTitle,
		Tags:       parsed.Tags,
		Region:     s.resolver.Resolve(regionsOf(parsed.Tags), parsed.Translated),
		Special:    parsed.Special,
		Revision:   parsed.Revision,
		Family:     models.FamilyDisc,
		FormatRank: kind.Rank(),
		Size:       size,
		Ordinal:    ordinal,
	}
}

func regionsOf(tags []models.Tag) []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range tags {
		if t.Category != models.TagRegion || seen[t.Canonical] {
			continue
		}
		seen[t.Canonical] = true
		out = append(out, t.Canonical)
	}
	return out
}
