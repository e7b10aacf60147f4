package orgdata

var firstNames = [...]string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda", "William", "Elizabeth",
	"David", "Barbara", "Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen",
	"Christopher", "Nancy", "Daniel", "Lisa", "Matthew", "Margaret", "Anthony", "Betty", "Mark", "Sandra",
	"Donald", "Ashley", "Steven", "Kimberly", "Paul", "Emily", "Brian", "Melissa", "George", "Deborah",
	"Kenneth", "Stephanie", "Andrew", "Rebecca", "Joshua", "Laura", "Kevin", "Sharon", "Bryan", "Cynthia",
	"Edward", "Kathleen", "Ronald", "Amy", "Timothy", "Shirley", "Jason", "Angela", "Jeffrey", "Helen",
	"Ryan", "Anna", "Jacob", "Brenda", "Gary", "Pamela", "Nicholas", "Nicole", "Eric", "Samantha",
	"Jonathan", "Katherine", "Stephen", "Emma", "Larry",
}

var lastNames = [...]string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
	"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
	"Walker", "Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter", "Roberts",
}
