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

package jobs

import (
	sdk "github.com/databricks/databricks-sdk-go/service/jobs"

	"github.com/jobkit-dev/jobkit-go/workflows"
)

type GitProvider string

const (
	GitProviderGitHub              GitProvider = "gitHub"
	GitProviderGitLab              GitProvider = "gitLab"
	GitProviderBitbucketCloud      GitProvider = "bitbucketCloud"
	GitProviderAzureDevOpsServices GitProvider = "azureDevOpsServices"
)

// GitSource pins the job's source artifacts to a remote git reference. At
// most one of branch, tag and commit is expected to be set.
type GitSource struct {
	workflows.Leaf

	GitUrl      string
	GitProvider GitProvider
	GitBranch   string
	GitTag      string
	GitCommit   string
}

func NewGitSource(gitUrl string, provider GitProvider) *GitSource {
	return &GitSource{GitUrl: gitUrl, GitProvider: provider}
}

func (g *GitSource) ToSDK() *sdk.GitSource {
	return &sdk.GitSource{
		GitUrl:      g.GitUrl,
		GitProvider: sdk.GitProvider(g.GitProvider),
		GitBranch:   g.GitBranch,
		GitTag:      g.GitTag,
		GitCommit:   g.GitCommit,
	}
}
