package entities

// Slot names one persisted collection.
type Slot string

const (
	SlotOrders       Slot = "orders"
	SlotHistory      Slot = "history"
	SlotContacts     Slot = "contacts"
	SlotTrainings    Slot = "trainings"
	SlotLetters      Slot = "letters"
	SlotTasks        Slot = "tasks"
	SlotProducts     Slot = "products"
	SlotMachineTypes Slot = "machineTypes"
)

// Slots lists every persisted collection in load order.
var Slots = []Slot{
	SlotOrders,
	SlotHistory,
	SlotContacts,
	SlotTrainings,
	SlotLetters,
	SlotTasks,
	SlotProducts,
	SlotMachineTypes,
}

func (s Slot) Valid() bool {
	for _, v := range Slots {
		if v == s {
			return true
		}
	}
	return false
}

var DefaultMachineTypes = []string{
	"Bar Soap Machine",
	"Liquid Soap Machine",
	"Powder Soap Machine",
	"Detergent Paste Machine",
	"Soap Noodle Machine",
	"Plastic Crusher / Shredder",
	"Plastic Washing Machine",
	"Plastic Dryer Machine",
	"Animal Feed Chopper",
	"Animal Feed Mixer",
	"Animal Feed Pelletizer",
	"Alcohol Distiller",
	"Almond Crusher",
	"Milk Separator",
	"Corn Sheller",
	"Grain Mill",
	"Coffee Roaster",
	"Coffee Grinder",
	"Onion Crusher",
	"Oil Press Machine",
	"Bread Slicing Machine",
	"Washing Machine (Laundry)",
	"Carpet Dust Remover",
	"Carpet Washing Machine",
	"Carpet Dryer",
	"Terrazzo Making Machine",
	"Concrete Mixer",
	"Brick Making Machine",
	"Block Making Machine",
	"Gypsum Block Mold",
	"Gypsum Partition Machine",
	"Aggafar Making Machine",
	"Gold Washing Machine",
	"Wood Lathe Machine",
	"Paper Bag Making Machine",
	"Candle Making Machine",
	"Straw/Chaff Processing Machine",
}

var TrainingTypes = []string{
	"Bar Soap Production Training",
	"Liquid Detergent Manufacturing",
	"Machine Operation & Maintenance",
	"Fiberglass Production Training",
	"Paper Bag Production",
	"Other",
}

var TrainingCategories = []string{
	"Liquid laundry soap",
	"Liquid dish soap",
	"Liquid hand soap",
	"Omo/powder soap",
	"Ajax",
	"Dry laundry soap",
	"Herbal soap",
	"Glycerin",
	"Lotion",
	"Paraffin ointment",
	"Vaseline",
	"Hair ointments",
	"Shampoos",
	"Conditioners",
	"Toilet cleaner",
	"Bleach",
	"Dettol",
	"Vim",
	"Denatured alcohol",
	"Nail polish remover",
	"Sanitizer",
	"Shower gel",
	"Car wash",
	"Cockroach and insect repellent",
	"Rust remover",
	"Hair gel",
	"Ceramic cleaner",
	"Paint thinner",
	"Soap scum and water stain",
}
