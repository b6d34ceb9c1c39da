package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/isoroom/config"
	"github.com/milk9111/isoroom/rooms"
	"github.com/milk9111/isoroom/script"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  roomtool dump [-rooms dir] <room.json>")
	fmt.Fprintln(os.Stderr, "  roomtool run [-rooms dir] [-dry] -script <file.tengo> <room.json>")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "dump":
		err = dumpCmd(os.Args[2:])
	case "run":
		err = runCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("roomtool: %v", err)
	}
}

func roomsDirFlag(fs *flag.FlagSet) *string {
	dir := "rooms"
	if cfg, err := config.Default(); err == nil {
		dir = cfg.RoomsDir
	} else {
		log.Printf("roomtool: %v", err)
	}
	return fs.String("rooms", dir, "rooms directory used to resolve structures")
}

func openArg(fs *flag.FlagSet, roomsDir string) (*rooms.Document, error) {
	if fs.NArg() != 1 {
		usage()
		return nil, fmt.Errorf("expected one room file, got %d", fs.NArg())
	}
	doc, err := rooms.Open(fs.Arg(0), roomsDir)
	if err != nil {
		return nil, err
	}
	if doc.Warning != nil {
		log.Printf("roomtool: %v", doc.Warning)
	}
	return doc, nil
}

func dumpCmd(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	roomsDir := roomsDirFlag(fs)
	fs.Parse(args)

	doc, err := openArg(fs, *roomsDir)
	if err != nil {
		return err
	}
	dumpRoom(os.Stdout, doc.Room)
	return nil
}

func runCmd(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	roomsDir := roomsDirFlag(fs)
	scriptPath := fs.String("script", "", "tengo script to apply")
	dry := fs.Bool("dry", false, "print the result instead of saving")
	fs.Parse(args)

	if *scriptPath == "" {
		usage()
		return fmt.Errorf("-script is required")
	}
	doc, err := openArg(fs, *roomsDir)
	if err != nil {
		return err
	}
	if err := script.RunFile(doc.Room, *scriptPath); err != nil {
		return err
	}
	if *dry {
		dumpRoom(os.Stdout, doc.Room)
		return nil
	}
	if err := doc.Save(); err != nil {
		return err
	}
	log.Printf("roomtool: saved %s and %s", doc.StructurePath, doc.DecorationPath)
	return nil
}
