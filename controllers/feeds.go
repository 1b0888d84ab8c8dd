package controllers

// CategoryFeed binds one category listing endpoint.
type CategoryFeed struct {
	Path        string // relative to /api
	Category    string
	Label       string
	Description string
}

var CategoryFeeds = []CategoryFeed{
	{Path: "/jobs", Category: "job", Label: "চাকরি", Description: "চাকরির আপডেট"},
	{Path: "/education", Category: "education", Label: "শিক্ষা", Description: "শিক্ষা আপডেট"},
	{Path: "/government", Category: "government", Label: "সরকারি নোটিশ", Description: "সরকারি নোটিশ"},
	{Path: "/hot", Category: "hot", Label: "হট আপডেট", Description: "হট আপডেট"},
}
