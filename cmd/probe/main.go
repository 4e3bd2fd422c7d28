// Test program to inspect what the metadata pipeline extracts from a file.
package main

import (
	"log"
	"os"

	"quaver/internal/tags"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <audio file>", os.Args[0])
	}
	path := os.Args[1]

	if !tags.IsAudioFile(path) {
		log.Fatalf("not a supported audio file: %s", path)
	}

	tag, err := tags.Read(path)
	if err != nil {
		log.Printf("tag read failed: %v", err)
	} else {
		log.Printf("Title:  %s", tag.Title)
		log.Printf("Artist: %s", tag.Artist)
	}

	duration, err := tags.Duration(path)
	if err != nil {
		log.Printf("duration probe failed: %v", err)
	} else {
		log.Printf("Length: %s", duration)
	}

	art, mime, err := tags.ExtractCoverArt(path)
	switch {
	case err != nil:
		log.Printf("no cover art: %v", err)
	default:
		log.Printf("Cover:  %d bytes (%s)", len(art), mime)
	}
}
