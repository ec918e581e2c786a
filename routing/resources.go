// Copyright 2025 The Junction Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package routing

import (
	"io"
	"io/fs"
	"os"
)

// ResourceLoader resolves a relative resource path ("css/site.css") to an
// openable byte stream. Returning false means the resource does not exist;
// loaders never distinguish I/O failure from absence at this layer.
type ResourceLoader interface {
	Load(path string) (io.ReadCloser, bool)
}

// Dir returns a ResourceLoader serving files from a directory on disk.
// Path traversal outside root is rejected by the underlying fs.FS rules.
func Dir(root string) ResourceLoader {
	return fsLoader{fsys: os.DirFS(root)}
}

// FS returns a ResourceLoader backed by any fs.FS, typically an embed.FS
// for resources bundled into the binary:
//
//	//go:embed public
//	var public embed.FS
//
//	sub, _ := fs.Sub(public, "public")
//	routing.Static("/assets", routing.FS(sub))
func FS(fsys fs.FS) ResourceLoader {
	return fsLoader{fsys: fsys}
}

type fsLoader struct {
	fsys fs.FS
}

func (l fsLoader) Load(path string) (io.ReadCloser, bool) {
	if !fs.ValidPath(path) {
		return nil, false
	}
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, false
	}
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		return nil, false
	}
	return f, true
}
