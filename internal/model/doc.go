// Package model defines the core data structures shared by the dirzip
// pipeline.
//
// # DiscoveredFile
//
// DiscoveredFile describes one file found during traversal:
//
//	file := model.DiscoveredFile{
//	    Path:    "/home/user/project/src/main.go",
//	    RelPath: "src/main.go",
//	    Size:    1024,
//	}
//
// RelPath is always slash-separated and relative to the source root,
// regardless of host path conventions, and becomes the entry name
// inside the archive.
//
// # Archive Naming
//
// ArchiveFileName computes the output filename:
//
//	model.ArchiveFileName("proj", now, true)  // "proj_20260823_153000.zip"
//	model.ArchiveFileName("proj", now, false) // "proj.zip"
package model
