package testutil

import "github.com/absedu/campus/core/sheet"

const (
	RangeUsers         = "students!A:K"
	RangeLectures      = "Lectures!A:M"
	RangeBanners       = "banners!A:F"
	RangeBranches      = "branches!A:F"
	RangeAnnouncements = "announcements!A:G"
)

// UsersGrid is an identity table with one user per role.
func UsersGrid() sheet.Grid {
	return sheet.Grid{
		{"number", "password", "name", "course", "batch", "year", "branch", "admissionYear", "pendingFees", "Role", "Faculty", "Guardian"},
		{"9000000001", "stud-pwd", "Sam", "NEET", "B1", "2024", "Kurla", "2023", "1500", "student", "", "Pat"},
		{"9000000002", "fac-pwd", "Dr. Rao", "", "", "", "Kurla", "", "", "Faculty", "", ""},
		{"9000000003", "adm-pwd", "Asha", "", "", "", "", "", "", "ADMIN", "Kurla"},
	}
}

// LecturesGrid returns lectures around the given ISO dates.
func LecturesGrid(yesterday, today, tomorrow, nextWeek string) sheet.Grid {
	return sheet.Grid{
		{"Subject", "Faculty", "Start", "End", "Mode", "Link", "Location", "Date", "Branch", "Course", "Batch", "Year"},
		{"Biology", "Dr. Rao", "10:00", "11:00", "Offline", "", "Room 4", today, "Kurla", "NEET", "B1", "2024"},
		{"Physics", "Dr. Rao", "09:00", "10:00", "Online", "https://meet/x", "", today, "kurla ", "neet", "b1", "2024"},
		{"Chemistry", "Ms. Iyer", "12:00", "13:00", "Offline", "", "Lab", tomorrow, "Kurla", "NEET", "B1", "2024"},
		{"Maths", "Dr. Rao", "08:00", "09:00", "Offline", "", "Room 1", yesterday, "Kurla", "NEET", "B1", "2024"},
		{"Biology", "dr. rao", "08:00", "09:00", "Online", "https://meet/y", "", nextWeek, "Thane", "JEE", "B2", "2025"},
		{"Zoology", "Dr. Rao", "07:00", "08:00", "Offline", "", "Room 2", tomorrow, "Thane", "NEET", "B1", "2024"},
		{"Botany", "Dr. Rao", "07:00", "08:00", "Offline", "", "Room 3", "soon"},
	}
}

func BannersGrid() sheet.Grid {
	return sheet.Grid{
		{"id", "title", "imageUrl", "link", "order", "isActive"},
		{"b1", "Second", "https://img/2", "", "2", "TRUE"},
		{"b2", "Unordered", "https://img/x", "", "x", "true"},
		{"b3", "First", "https://img/1", "https://promo", "1"},
		{"b4", "Hidden", "https://img/h", "", "0", "FALSE"},
	}
}

func BranchesGrid() sheet.Grid {
	return sheet.Grid{
		{"id", "branch", "course", "batch", "year", "inCharge"},
		{"1", "Kurla", "NEET", "B1", "2024", "Asha"},
		{"2", "Thane", "JEE", "B2", "2025"},
	}
}

func AnnouncementsGrid() sheet.Grid {
	return sheet.Grid{
		{"id", "title", "message", "date", "image", "video", "More details", "audience"},
		{"a1", "Fees due, {name}", "Pending: {pendingFees}", "2024-05-01", "", "https://youtu.be/dQw4w9WgXcQ", "Priority: High\nVenue: Hall\nBring ID", "all"},
		{"a2", "Holiday", "Closed on {day}", "2024-06-01", "https://img/h", "", ""},
		{"a3", "Old", "Archived", "2023-12-31"},
	}
}
