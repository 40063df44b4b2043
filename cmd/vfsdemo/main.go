// vfsdemo builds a sample directory tree in an in-memory filesystem,
// exercises file streams and tree mutation, and prints the result.
package main

import (
	"flag"
	"fmt"

	"github.com/memkit/vfs"
	"github.com/memkit/vfs/config"
	"github.com/memkit/vfs/filesystem"
	"github.com/memkit/vfs/internal/util"
)

func printTree(fsys *filesystem.FileSystem, path, shift string) {
	node := fsys.GetNodeInfo(path)
	children, err := fsys.ListNode(node)
	if err != nil {
		return
	}

	fmt.Printf("%sDir: %s\n", shift, node.Name())
	for _, child := range children {
		if child.IsDir() {
			printTree(fsys, path+child.Name()+"/", shift+" ")
		} else {
			fmt.Printf("%s File: %s Size: %d\n", shift, child.Name(), fsys.FileSize(child))
		}
	}
}

func main() {
	var (
		configPath string
		verbose    int
	)
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.IntVar(&verbose, "verbose", 3, "Log verbosity level between 1 (error) and 5 (trace). Default is 3 (info).")
	flag.IntVar(&verbose, "v", 3, "--verbose (shorthand)")
	flag.Parse()

	if verbose < 1 {
		verbose = 1
	}
	if verbose > 5 {
		verbose = 5
	}
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	util.InitializeLogger(logLvls[verbose-1])
	logger := util.GetLogger("main")

	cfg := config.NewDefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = config.NewConfigFromFile(configPath); err != nil {
			logger.Fatal().Err(err).Str("config", configPath).Msg("Failed to load config file")
		}
	}

	fsys := filesystem.New(cfg)

	// Linux-like file hierarchy.
	for _, dir := range []string{
		"/bin", "/boot", "/dev", "/etc", "/home", "/lib", "/media",
		"/mnt", "/opt", "/sbin", "/srv", "/tmp", "/usr", "/proc",
	} {
		if err := fsys.CreateDir(dir, false); err != nil {
			logger.Fatal().Err(err).Str("path", dir).Msg("Failed to create directory")
		}
	}
	if err := fsys.CreateDir("/tmp/Test", false); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create directory")
	}

	stream, err := fsys.Open("/tmp/notes.txt", vfs.ModeRW)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open file")
	}
	stream.WriteLine("The quick brown fox")
	stream.WriteLine("jumps over the lazy dog")
	stream.WriteLine("and lands in /tmp")

	for !stream.IsEOF() {
		fmt.Println(stream.ReadLine())
	}

	stream.Seek(vfs.SeekEnd, -4)
	fmt.Println(stream.ReadAll())
	stream.Close()

	if err := fsys.Rename("/tmp/notes.txt", "scratch.txt"); err != nil {
		logger.Error().Err(err).Msg("Rename failed")
	}
	if err := fsys.Move("/tmp/scratch.txt", "/usr"); err != nil {
		logger.Error().Err(err).Msg("Move failed")
	}
	if err := fsys.Delete("/tmp/Test"); err != nil {
		logger.Error().Err(err).Msg("Delete failed")
	}
	if err := fsys.Copy("/usr/scratch.txt", "/tmp/scratch.txt"); err != nil {
		logger.Error().Err(err).Msg("Copy failed")
	}
	if err := fsys.Copy("tmp", "usr/tmp_copy"); err != nil {
		logger.Error().Err(err).Msg("Copy failed")
	}

	printTree(fsys, "/", "")
}
