package caption

// templates are the caption shapes. Placeholders name a pool; an uppercase
// first letter capitalizes the substituted value.
var templates = []string{
	"A {person} {action} {location} {time}",
	"Close-up of {person} {emotion} {doing} {object}",
	"{Person} {activity} {setting} {with} {object}",
	"Portrait of {person} {emotion} {location}",
	"{Person} {action} {object} {setting}",
	"{Person} {pose} {location} {time}",
	"A {person} {doing} {with} {object} {location}",
	"{Person} {emotion} {action} {setting}",
	"Side view of {person} {doing} {location}",
	"{Person} {activity} {with} {object} {time}",
	"Group of {person} {action} {location}",
	"{Person} {pose} {with} {object} {setting}",
	"A {person} {emotion} {doing} {location} {time}",
	"{Person} {action} {setting} {with} {object}",
	"Close-up portrait of {person} {emotion}",
	"{Person} {doing} {activity} {location}",
	"A {person} {pose} {location} {with} {object}",
	"{Person} {action} {object} {time}",
	"Professional {person} {doing} {location}",
	"{Person} {emotion} {pose} {setting}",
	"A {person} {doing} {with} {object}",
	"{Person} {activity} {location} {time}",
	"Portrait shot of {person} {emotion} {location}",
	"{Person} {action} {setting} {time}",
	"A {person} {pose} {with} {object}",
	"{Person} {doing} {activity} {with} {object}",
	"Close-up of {person} {action} {location}",
	"{Person} {emotion} {doing} {setting}",
	"A {person} {activity} {location} {with} {object}",
	"{Person} {pose} {doing} {location} {time}",
}
