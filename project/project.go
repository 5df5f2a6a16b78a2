// Package project locates the Java sources a command runs over.
package project

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Project describes where a project keeps its Java sources.
type Project struct {
	RootDir string
	// SrcDirs are the directories scanned for .java files, relative
	// paths resolved against RootDir.
	SrcDirs []string
}

// pomBuild is the slice of a Maven pom.xml we care about.
type pomBuild struct {
	XMLName xml.Name `xml:"project"`
	Build   struct {
		SourceDirectory     string `xml:"sourceDirectory"`
		TestSourceDirectory string `xml:"testSourceDirectory"`
	} `xml:"build"`
}

// Load scans the current directory.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom builds a Project for rootDir. A pom.xml with a
// <sourceDirectory> overrides the Maven defaults; without a pom.xml
// the whole tree is scanned.
func LoadFrom(rootDir string) (*Project, error) {
	info, err := os.Stat(rootDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", rootDir)
	}

	proj := &Project{RootDir: rootDir}
	pomPath := filepath.Join(rootDir, "pom.xml")
	data, err := os.ReadFile(pomPath)
	if err != nil {
		proj.SrcDirs = []string{"."}
		return proj, nil
	}

	var pom pomBuild
	if err := xml.Unmarshal(data, &pom); err != nil {
		return nil, fmt.Errorf("parse %s: %w", pomPath, err)
	}
	src := pom.Build.SourceDirectory
	if src == "" {
		src = filepath.Join("src", "main", "java")
	}
	test := pom.Build.TestSourceDirectory
	if test == "" {
		test = filepath.Join("src", "test", "java")
	}
	for _, dir := range []string{src, test} {
		full := dir
		if !filepath.IsAbs(full) {
			full = filepath.Join(rootDir, dir)
		}
		if info, err := os.Stat(full); err == nil && info.IsDir() {
			proj.SrcDirs = append(proj.SrcDirs, dir)
		}
	}
	if len(proj.SrcDirs) == 0 {
		proj.SrcDirs = []string{"."}
	}
	return proj, nil
}

// JavaFiles returns every .java file under the project's source
// directories, sorted. Hidden directories and common build output
// directories are skipped.
func (p *Project) JavaFiles() ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, dir := range p.SrcDirs {
		full := dir
		if !filepath.IsAbs(full) {
			full = filepath.Join(p.RootDir, dir)
		}
		err := filepath.WalkDir(full, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != full && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(d.Name(), ".java") {
				return nil
			}
			if !seen[path] {
				seen[path] = true
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

// FindJavaFiles resolves each argument to a list of .java files. A
// file argument is taken as is; a directory argument is scanned like a
// project source directory.
func FindJavaFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		proj := &Project{RootDir: arg, SrcDirs: []string{"."}}
		found, err := proj.JavaFiles()
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	sort.Strings(files)
	return files, nil
}

func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch name {
	case "target", "build", "out", "node_modules":
		return true
	}
	return false
}
