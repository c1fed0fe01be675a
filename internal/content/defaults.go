package content

var (
	about = `I am an Electrical Engineer specializing in power systems and industrial automation.
	My work focuses on creating resilient energy infrastructure and smart grid solutions to support
	Indonesia's transition to sustainable power.`

	microgrid = `Design and simulation of a 500kW solar-hybrid microgrid for a remote mining site,
	reducing fuel consumption by 40%.`

	transformerMonitor = `Developed a low-power LoRaWAN sensor node for real-time thermal and load
	monitoring of distribution transformers.`

	chargingNetwork = `Electrical infrastructure design and load flow analysis for a city-wide network
	of 15 DC fast-charging stations.`
)

// Default returns the site compiled into the binary.
func Default() *Site {
	return &Site{
		Profile: Profile{
			Name:            "ELECTRICAL",
			LastName:        "CP",
			Role:            "Professional Electrical Engineer",
			Email:           "sabianpriya27@gmail.com",
			GitHub:          "https://github.com",
			GitHubHandle:    "sabiancp",
			LinkedIn:        "https://linkedin.com",
			LinkedInName:    "Sabian Priya",
			About:           about,
			ExperienceYears: "8+",
		},
		Projects: []Project{
			{
				ID:          1,
				Title:       "Smart Microgrid Implementation",
				Description: microgrid,
				Tags:        []string{"ETAP", "HOMER Pro", "Renewables"},
				Image:       "https://www.singaporetech.edu.sg/sitlearn/sites/sitlearn/files/2024-03/Course-SmartGridsMasterclass-banner.jpg",
			},
			{
				ID:          2,
				Title:       "IoT Transformer Monitor",
				Description: transformerMonitor,
				Tags:        []string{"Altium", "ESP32", "LoRaWAN"},
				Image:       "https://www.nextmsc.com/nextmsc-stg/images/news-transformer-monitoring-market-header-image_1756212523.jpeg",
			},
			{
				ID:          4,
				Title:       "EV Fast-Charging Network",
				Description: chargingNetwork,
				Tags:        []string{"Load Analysis", "EVSE", "Power Distribution"},
				Image:       "https://assets.new.siemens.com/siemens/assets/api/uuid:dfbfc449-5ff4-4a05-8452-a1dc61d7453e/width:1024/quality:HIGH/dfbfc449-5ff4-4a05-8452-a1dc61d7453e-high.webp",
			},
		},
		Skills: []Skill{
			{Name: "Power System Analysis", Icon: "globe", Level: 94},
			{Name: "Circuit & PCB Design", Icon: "layers", Level: 92},
			{Name: "Renewable Energy", Icon: "code", Level: 90},
		},
	}
}
