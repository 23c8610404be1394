package dataset

// slotsByDay mirrors the school's weekly grid: every day runs the full
// slot range except Friday, which is shortened to the last two slots.
var slotsByDay = map[Day][]Slot{
	Monday:    {1, 2, 3, 4, 5},
	Tuesday:   {1, 2, 3, 4, 5},
	Wednesday: {1, 2, 3, 4, 5},
	Thursday:  {1, 2, 3, 4, 5},
	Friday:    {4, 5},
}

// teacherAvailability is the compiled-in roster used when no external
// dataset file is supplied. Values are day -> allowed slots.
var teacherAvailability = map[string]map[Day][]Slot{
	"Sanya": {
		Monday:    {1, 2, 3, 4, 5},
		Tuesday:   {1, 2, 3, 4, 5},
		Wednesday: {1, 2, 3, 4, 5},
	},
	"Usha": {
		Monday:    {1, 2, 3, 4, 5},
		Wednesday: {1, 2, 3, 4, 5},
		Thursday:  {1, 2, 3, 4},
	},
	"Guru": {
		Monday:    {1, 2, 3, 4, 5},
		Wednesday: {1, 2, 3, 4, 5},
		Thursday:  {1, 2, 3, 4},
	},
	"Gayatri": {
		Tuesday:  {1, 2, 3, 4, 5},
		Thursday: {1, 2, 3, 4},
	},
	"Zeba": {
		Monday:    {1, 2, 3, 4, 5},
		Tuesday:   {1, 2, 3, 4, 5},
		Wednesday: {1, 2, 3, 4, 5},
		Thursday:  {1, 2, 3, 4},
		Friday:    {4, 5},
	},
	"Shravani": {
		Monday:    {1, 2, 3, 4, 5},
		Tuesday:   {1, 2, 3, 4, 5},
		Wednesday: {1, 2, 3, 4, 5},
		Thursday:  {1, 2, 3, 4},
		Friday:    {4, 5},
	},
}

// st is a shorthand constructor kept local to this file so the table
// below reads as plain data.
func st(teacher, code, subject string, multiplicity int, students ...string) SessionTemplate {
	return SessionTemplate{Teacher: teacher, Code: code, Subject: subject, Multiplicity: multiplicity, Students: students}
}

// sessionTemplates is the full list of recurring sessions this school
// needs to place every week.
var sessionTemplates = []SessionTemplate{
	// Sanya (Math)
	st("Sanya", "Sanya_1", "Math", 3, "Ekaansh", "Parth"),
	st("Sanya", "Sanya_2", "Math", 3, "Nithil", "Aakash", "Nuha", "Karthika"),
	st("Sanya", "Sanya_3", "Math", 3, "Ishita", "Abhigya", "Sathvik"),
	st("Sanya", "Sanya_4", "Math", 3, "Neil", "Mohammad"),
	// Usha (Math)
	st("Usha", "Usha_1", "Math", 3, "Anshika", "Asmi", "Arjun", "Arhat"),
	st("Usha", "Usha_2", "Math", 3, "Aashmi", "Arhan", "Trisha", "Vedaant", "Kanav"),
	st("Usha", "Usha_3", "Math", 3, "Archana", "Myra", "Mythili", "Shlok"),
	st("Usha", "Usha_4", "Math", 2, "Anik", "Sahan", "Sayan"),
	st("Usha", "Usha_5", "Math", 3, "Sruthi"),
	// Gayatri (English)
	st("Gayatri", "Eng_1", "English", 2, "Ekaansh", "Aakash"),
	st("Gayatri", "Eng_2", "English", 2, "Aashmi", "Abhigya", "Ishita", "Neil", "Nithil", "Sathvik", "Sayan", "Arjun", "Mohammad"),
	st("Gayatri", "Eng_3", "English", 2, "Anik", "Parth", "Arhan", "Arhat", "Karthika", "Kanav"),
	st("Gayatri", "Eng_4", "English", 1, "Anshika", "Archana", "Myra", "Mythili", "Trisha"),
	st("Gayatri", "Eng_5", "English", 1, "Asmi", "Nuha", "Sahan", "Shlok", "Sruthi", "Vedaant"),
	// Shravani (Science)
	st("Shravani", "Sci_1", "Science", 3, "Neil", "Aakash", "Arhat", "Abhigya", "Sruthi"),
	st("Shravani", "Sci_2", "Science", 3, "Mohammad", "Ekaansh", "Ishita", "Nuha", "Karthika"),
	// Zeba (SST / English cover)
	st("Zeba", "SST_1", "SST", 3, "Arhat", "Neil", "Parth", "Ekaansh", "Karthika", "Nithil", "Aakash"),
	st("Zeba", "SST_2", "SST", 3, "Anik", "Mohammad", "Arjun", "Sathvik"),
	st("Zeba", "SST_3", "SST", 2, "Kanav", "Abhigya", "Sruthi", "Nuha", "Sahan", "Sayan", "Ishita"),
	st("Zeba", "SST_4", "SST", 2, "Arhan", "Asmi", "Anshika", "Trisha", "Aashmi"),
	st("Zeba", "SST_5", "SST", 2, "Myra", "Mythili", "Archana", "Vedaant", "Shlok"),
	st("Zeba", "Eng_1", "English", 1, "Ekaansh", "Aakash"),
	// Guru (Science + Math cover)
	st("Guru", "Sci_3", "Science", 2, "Aashmi", "Vedaant", "Anshika", "Archana", "Asmi", "Sahan"),
	st("Guru", "Sci_4", "Science", 2, "Arhan", "Arjun", "Nithil", "Parth", "Sathvik", "Anik"),
	st("Guru", "Sci_5", "Science", 2, "Kanav", "Myra", "Sayan", "Trisha", "Mythili", "Shlok"),
	st("Guru", "Sanya_1", "Math", 1, "Ekaansh", "Parth"),
}

// Fixture returns the compiled-in default Dataset. It is the source
// used by every cmd/ entrypoint unless an external dataset path is
// supplied.
func Fixture() *Dataset {
	return Build(Days, slotsByDay, teacherAvailability, sessionTemplates)
}
