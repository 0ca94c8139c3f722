// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package recommend

// ExperienceLevel is the seniority a project asks for or a freelancer has.
type ExperienceLevel string

// Experience levels, ordered from least to most senior.
const (
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceExpert ExperienceLevel = "expert"
)

// ExperienceLevels is the ordinal experience vocabulary.
var ExperienceLevels = []ExperienceLevel{
	ExperienceJunior,
	ExperienceMid,
	ExperienceSenior,
	ExperienceExpert,
}

// Index returns the ordinal position of l, or -1 if l is unknown.
func (l ExperienceLevel) Index() int {
	for i, v := range ExperienceLevels {
		if v == l {
			return i
		}
	}
	return -1
}

// ProjectType is the engagement model of a project.
type ProjectType string

// Project types.
const (
	ProjectFullTime   ProjectType = "full_time"
	ProjectPartTime   ProjectType = "part_time"
	ProjectContract   ProjectType = "contract"
	ProjectFreelance  ProjectType = "freelance"
	ProjectInternship ProjectType = "internship"
)

// ProjectTypes is the project type vocabulary.
var ProjectTypes = []ProjectType{
	ProjectFullTime,
	ProjectPartTime,
	ProjectContract,
	ProjectFreelance,
	ProjectInternship,
}

// WorkType is where the work happens.
type WorkType string

// Work types.
const (
	WorkRemote WorkType = "remote"
	WorkOnsite WorkType = "onsite"
	WorkHybrid WorkType = "hybrid"
)

// WorkTypes is the work type vocabulary.
var WorkTypes = []WorkType{
	WorkRemote,
	WorkOnsite,
	WorkHybrid,
}

// ReferenceSkills is the skill vocabulary used for project feature vectors.
// Membership is an exact, case-sensitive match.
var ReferenceSkills = []string{
	"JavaScript",
	"TypeScript",
	"React",
	"Node.js",
	"Python",
	"Java",
	"Go",
	"SQL",
}
