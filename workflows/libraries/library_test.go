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

package libraries

import (
	"testing"

	"github.com/databricks/databricks-sdk-go/service/compute"
	"github.com/stretchr/testify/assert"
)

func TestLibraryChildrenOmitAbsent(t *testing.T) {
	library := &Library{Jar: "dbfs:/libs/app.jar"}
	assert.Empty(t, library.Children())

	library.Pypi = NewPythonPyPiLibrary("requests")
	children := library.Children()
	assert.Len(t, children, 1)
	assert.Same(t, library.Pypi, children[0].(*PythonPyPiLibrary))
}

func TestLibraryChildrenOrder(t *testing.T) {
	library := &Library{
		Cran:  NewRCranLibrary("ggplot2"),
		Maven: NewMavenLibrary("org.jsoup:jsoup:1.7.2"),
		Pypi:  NewPythonPyPiLibrary("requests"),
	}

	children := library.Children()
	assert.Len(t, children, 3)
	assert.Same(t, library.Cran, children[0].(*RCranLibrary))
	assert.Same(t, library.Maven, children[1].(*MavenLibrary))
	assert.Same(t, library.Pypi, children[2].(*PythonPyPiLibrary))
}

func TestLibraryToSDK(t *testing.T) {
	library := &Library{
		Egg: "dbfs:/libs/app.egg",
		Jar: "dbfs:/libs/app.jar",
		Whl: "dbfs:/libs/app.whl",
		Maven: &MavenLibrary{
			Coordinates: "org.jsoup:jsoup:1.7.2",
			Exclusions:  []string{"slf4j:slf4j"},
		},
		Pypi: &PythonPyPiLibrary{Package: "simplejson", Repo: "https://my-repo.example"},
	}

	got := library.ToSDK()
	assert.Equal(t, compute.Library{
		Egg: "dbfs:/libs/app.egg",
		Jar: "dbfs:/libs/app.jar",
		Whl: "dbfs:/libs/app.whl",
		Maven: &compute.MavenLibrary{
			Coordinates: "org.jsoup:jsoup:1.7.2",
			Exclusions:  []string{"slf4j:slf4j"},
		},
		Pypi: &compute.PythonPyPiLibrary{Package: "simplejson", Repo: "https://my-repo.example"},
	}, got)
}
