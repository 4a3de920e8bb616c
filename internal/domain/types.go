package domain

// RoomType classifies a Room and the required_room_type a ClassDemand asks
// for. Values are open — the catalog is whatever the loader's input data
// declares (e.g. "CLASSROOM", "LABORATORY", "AUDITORIUM") — eligibility is
// purely a bucket lookup by this string (see internal/eligibility).
type RoomType string

// CourseType classifies a Course (lecture, lab, seminar, ...). Like
// RoomType, the catalog is open and driven entirely by input data.
type CourseType string
