package domain

type LightLevel string

const (
	LightBrightDirect   LightLevel = "bright-direct"
	LightBrightIndirect LightLevel = "bright-indirect"
	LightMediumIndirect LightLevel = "medium-indirect"
	LightLow            LightLevel = "low-light"
)

// LightLevels lists every light level from brightest to darkest.
var LightLevels = []LightLevel{LightBrightDirect, LightBrightIndirect, LightMediumIndirect, LightLow}

type LightSource string

const (
	SourceWindow   LightSource = "window"
	SourceLamp     LightSource = "lamp"
	SourceNoWindow LightSource = "no-window"
)

type Direction string

const (
	DirectionNorth  Direction = "north"
	DirectionEast   Direction = "east"
	DirectionSouth  Direction = "south"
	DirectionWest   Direction = "west"
	DirectionUnsure Direction = "unsure"
)

type SunExposure string

const (
	SunLots       SunExposure = "lots"
	SunABit       SunExposure = "a-bit"
	SunAlmostNone SunExposure = "almost-none"
)

type WindowDistance string

const (
	DistanceWindowsill WindowDistance = "windowsill"
	DistanceClose      WindowDistance = "close"
	DistanceMid        WindowDistance = "mid"
	DistanceFar        WindowDistance = "far"
)

type RoomType string

const (
	RoomBedroom  RoomType = "bedroom"
	RoomLiving   RoomType = "living-room"
	RoomKitchen  RoomType = "kitchen"
	RoomBathroom RoomType = "bathroom"
	RoomOffice   RoomType = "office"
	RoomDining   RoomType = "dining-room"
	RoomHallway  RoomType = "hallway"
	RoomOther    RoomType = "other"
)

type PlantStatus string

const (
	StatusAllGood        PlantStatus = "all-good"
	StatusNeedsWater     PlantStatus = "needs-water"
	StatusCheckLight     PlantStatus = "check-light"
	StatusNeedsAttention PlantStatus = "needs-attention"
)

type TaskType string

const (
	TaskWatering    TaskType = "watering"
	TaskRotating    TaskType = "rotating"
	TaskFertilizing TaskType = "fertilizing"
	TaskMisting     TaskType = "misting"
	TaskPruning     TaskType = "pruning"
	TaskPestCheck   TaskType = "pestCheck"
	TaskUnknown     TaskType = ""
)

// TaskTypes is the canonical order used when expanding a task configuration.
var TaskTypes = []TaskType{TaskWatering, TaskRotating, TaskFertilizing, TaskMisting, TaskPruning, TaskPestCheck}

type TaskCategory string

const (
	CategoryCare       TaskCategory = "care"
	CategoryLightCheck TaskCategory = "light-check"
	CategoryGeneral    TaskCategory = "general"
)

// Valid* sets are the accepted wire/storage strings for each enum.
var (
	ValidLightLevels = map[string]bool{
		"bright-direct": true, "bright-indirect": true, "medium-indirect": true, "low-light": true,
	}
	ValidLightSources = map[string]bool{"window": true, "lamp": true, "no-window": true}
	ValidDirections   = map[string]bool{
		"north": true, "east": true, "south": true, "west": true, "unsure": true,
	}
	ValidSunExposures = map[string]bool{"lots": true, "a-bit": true, "almost-none": true}
	ValidDistances    = map[string]bool{"windowsill": true, "close": true, "mid": true, "far": true}
	ValidRoomTypes    = map[string]bool{
		"bedroom": true, "living-room": true, "kitchen": true, "bathroom": true,
		"office": true, "dining-room": true, "hallway": true, "other": true,
	}
	ValidPlantStatuses = map[string]bool{
		"all-good": true, "needs-water": true, "check-light": true, "needs-attention": true,
	}
	ValidTaskTypes = map[string]bool{
		"watering": true, "rotating": true, "fertilizing": true,
		"misting": true, "pruning": true, "pestCheck": true,
	}
	ValidTaskCategories = map[string]bool{"care": true, "light-check": true, "general": true}
)
