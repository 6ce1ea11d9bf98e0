package model

import "time"

type WebsiteConf struct {
	WebsiteBaseURL        string `json:"website_base_url"`
	WebsiteName           string `json:"website_name"`
	WebsiteNameShortcut   string `json:"website_name_shortcut"`
	WebsiteFooter         string `json:"website_footer"`
	AllowRegister         bool   `json:"allow_register"`
	SubmissionListShowAll bool   `json:"submission_list_show_all"`
}

type Announcement struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreateTime time.Time `json:"create_time"`
	CreatedBy  User      `json:"created_by"`
	Visible    bool      `json:"visible"`
}
