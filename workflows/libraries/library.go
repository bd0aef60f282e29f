/*
 * Copyright (c) 2024 The jobkit-go Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package libraries holds the nodes describing libraries installed on a
// task's cluster before execution.
package libraries

import (
	"github.com/databricks/databricks-sdk-go/service/compute"

	"github.com/jobkit-dev/jobkit-go/workflows"
)

// RCranLibrary installs a CRAN package.
type RCranLibrary struct {
	workflows.Leaf

	Package string
	Repo    string
}

func NewRCranLibrary(pkg string) *RCranLibrary {
	return &RCranLibrary{Package: pkg}
}

func (l *RCranLibrary) ToSDK() *compute.RCranLibrary {
	return &compute.RCranLibrary{
		Package: l.Package,
		Repo:    l.Repo,
	}
}

// MavenLibrary installs a Maven artifact.
type MavenLibrary struct {
	workflows.Leaf

	Coordinates string
	Exclusions  []string
	Repo        string
}

func NewMavenLibrary(coordinates string) *MavenLibrary {
	return &MavenLibrary{Coordinates: coordinates}
}

func (l *MavenLibrary) ToSDK() *compute.MavenLibrary {
	return &compute.MavenLibrary{
		Coordinates: l.Coordinates,
		Exclusions:  l.Exclusions,
		Repo:        l.Repo,
	}
}

// PythonPyPiLibrary installs a PyPI package.
type PythonPyPiLibrary struct {
	workflows.Leaf

	Package string
	Repo    string
}

func NewPythonPyPiLibrary(pkg string) *PythonPyPiLibrary {
	return &PythonPyPiLibrary{Package: pkg}
}

func (l *PythonPyPiLibrary) ToSDK() *compute.PythonPyPiLibrary {
	return &compute.PythonPyPiLibrary{
		Package: l.Package,
		Repo:    l.Repo,
	}
}

// Library is one library to install. At most one of its fields is expected
// to be set.
type Library struct {
	Cran  *RCranLibrary
	Egg   string
	Jar   string
	Maven *MavenLibrary
	Pypi  *PythonPyPiLibrary
	Whl   string
}

func (l *Library) Children() []workflows.JobNode {
	var children []workflows.JobNode
	if l.Cran != nil {
		children = append(children, l.Cran)
	}
	if l.Maven != nil {
		children = append(children, l.Maven)
	}
	if l.Pypi != nil {
		children = append(children, l.Pypi)
	}
	return children
}

func (l *Library) ToSDK() compute.Library {
	library := compute.Library{
		Egg: l.Egg,
		Jar: l.Jar,
		Whl: l.Whl,
	}
	if l.Cran != nil {
		library.Cran = l.Cran.ToSDK()
	}
	if l.Maven != nil {
		library.Maven = l.Maven.ToSDK()
	}
	if l.Pypi != nil {
		library.Pypi = l.Pypi.ToSDK()
	}
	return library
}
