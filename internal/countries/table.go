package countries

// countries holds the ISO 3166-1 registry keyed by alpha-2 code. Names are
// the ISO short names; Official carries the full state name where one
// exists. Variant spellings live in aliases below.
var countries = map[string]Country{
	"AD": {Name: "Andorra", Official: "Principality of Andorra", Alpha3: "AND"},
	"AE": {Name: "United Arab Emirates", Alpha3: "ARE"},
	"AF": {Name: "Afghanistan", Official: "Islamic Republic of Afghanistan", Alpha3: "AFG"},
	"AG": {Name: "Antigua and Barbuda", Alpha3: "ATG"},
	"AI": {Name: "Anguilla", Alpha3: "AIA"},
	"AL": {Name: "Albania", Official: "Republic of Albania", Alpha3: "ALB"},
	"AM": {Name: "Armenia", Official: "Republic of Armenia", Alpha3: "ARM"},
	"AO": {Name: "Angola", Official: "Republic of Angola", Alpha3: "AGO"},
	"AQ": {Name: "Antarctica", Alpha3: "ATA"},
	"AR": {Name: "Argentina", Official: "Argentine Republic", Alpha3: "ARG"},
	"AS": {Name: "American Samoa", Alpha3: "ASM"},
	"AT": {Name: "Austria", Official: "Republic of Austria", Alpha3: "AUT"},
	"AU": {Name: "Australia", Alpha3: "AUS"},
	"AW": {Name: "Aruba", Alpha3: "ABW"},
	"AX": {Name: "Åland Islands", Alpha3: "ALA"},
	"AZ": {Name: "Azerbaijan", Official: "Republic of Azerbaijan", Alpha3: "AZE"},
	"BA": {Name: "Bosnia and Herzegovina", Official: "Republic of Bosnia and Herzegovina", Alpha3: "BIH"},
	"BB": {Name: "Barbados", Alpha3: "BRB"},
	"BD": {Name: "Bangladesh", Official: "People's Republic of Bangladesh", Alpha3: "BGD"},
	"BE": {Name: "Belgium", Official: "Kingdom of Belgium", Alpha3: "BEL"},
	"BF": {Name: "Burkina Faso", Alpha3: "BFA"},
	"BG": {Name: "Bulgaria", Official: "Republic of Bulgaria", Alpha3: "BGR"},
	"BH": {Name: "Bahrain", Official: "Kingdom of Bahrain", Alpha3: "BHR"},
	"BI": {Name: "Burundi", Official: "Republic of Burundi", Alpha3: "BDI"},
	"BJ": {Name: "Benin", Official: "Republic of Benin", Alpha3: "BEN"},
	"BL": {Name: "Saint Barthélemy", Alpha3: "BLM"},
	"BM": {Name: "Bermuda", Alpha3: "BMU"},
	"BN": {Name: "Brunei Darussalam", Alpha3: "BRN"},
	"BO": {Name: "Bolivia, Plurinational State of", Official: "Plurinational State of Bolivia", Alpha3: "BOL"},
	"BQ": {Name: "Bonaire, Sint Eustatius and Saba", Alpha3: "BES"},
	"BR": {Name: "Brazil", Official: "Federative Republic of Brazil", Alpha3: "BRA"},
	"BS": {Name: "Bahamas", Official: "Commonwealth of the Bahamas", Alpha3: "BHS"},
	"BT": {Name: "Bhutan", Official: "Kingdom of Bhutan", Alpha3: "BTN"},
	"BV": {Name: "Bouvet Island", Alpha3: "BVT"},
	"BW": {Name: "Botswana", Official: "Republic of Botswana", Alpha3: "BWA"},
	"BY": {Name: "Belarus", Official: "Republic of Belarus", Alpha3: "BLR"},
	"BZ": {Name: "Belize", Alpha3: "BLZ"},
	"CA": {Name: "Canada", Alpha3: "CAN"},
	"CC": {Name: "Cocos (Keeling) Islands", Alpha3: "CCK"},
	"CD": {Name: "Congo, The Democratic Republic of the", Alpha3: "COD"},
	"CF": {Name: "Central African Republic", Alpha3: "CAF"},
	"CG": {Name: "Congo", Official: "Republic of the Congo", Alpha3: "COG"},
	"CH": {Name: "Switzerland", Official: "Swiss Confederation", Alpha3: "CHE"},
	"CI": {Name: "Côte d'Ivoire", Official: "Republic of Côte d'Ivoire", Alpha3: "CIV"},
	"CK": {Name: "Cook Islands", Alpha3: "COK"},
	"CL": {Name: "Chile", Official: "Republic of Chile", Alpha3: "CHL"},
	"CM": {Name: "Cameroon", Official: "Republic of Cameroon", Alpha3: "CMR"},
	"CN": {Name: "China", Official: "People's Republic of China", Alpha3: "CHN"},
	"CO": {Name: "Colombia", Official: "Republic of Colombia", Alpha3: "COL"},
	"CR": {Name: "Costa Rica", Official: "Republic of Costa Rica", Alpha3: "CRI"},
	"CU": {Name: "Cuba", Official: "Republic of Cuba", Alpha3: "CUB"},
	"CV": {Name: "Cabo Verde", Official: "Republic of Cabo Verde", Alpha3: "CPV"},
	"CW": {Name: "Curaçao", Alpha3: "CUW"},
	"CX": {Name: "Christmas Island", Alpha3: "CXR"},
	"CY": {Name: "Cyprus", Official: "Republic of Cyprus", Alpha3: "CYP"},
	"CZ": {Name: "Czechia", Official: "Czech Republic", Alpha3: "CZE"},
	"DE": {Name: "Germany", Official: "Federal Republic of Germany", Alpha3: "DEU"},
	"DJ": {Name: "Djibouti", Official: "Republic of Djibouti", Alpha3: "DJI"},
	"DK": {Name: "Denmark", Official: "Kingdom of Denmark", Alpha3: "DNK"},
	"DM": {Name: "Dominica", Official: "Commonwealth of Dominica", Alpha3: "DMA"},
	"DO": {Name: "Dominican Republic", Alpha3: "DOM"},
	"DZ": {Name: "Algeria", Official: "People's Democratic Republic of Algeria", Alpha3: "DZA"},
	"EC": {Name: "Ecuador", Official: "Republic of Ecuador", Alpha3: "ECU"},
	"EE": {Name: "Estonia", Official: "Republic of Estonia", Alpha3: "EST"},
	"EG": {Name: "Egypt", Official: "Arab Republic of Egypt", Alpha3: "EGY"},
	"EH": {Name: "Western Sahara", Alpha3: "ESH"},
	"ER": {Name: "Eritrea", Official: "State of Eritrea", Alpha3: "ERI"},
	"ES": {Name: "Spain", Official: "Kingdom of Spain", Alpha3: "ESP"},
	"ET": {Name: "Ethiopia", Official: "Federal Democratic Republic of Ethiopia", Alpha3: "ETH"},
	"FI": {Name: "Finland", Official: "Republic of Finland", Alpha3: "FIN"},
	"FJ": {Name: "Fiji", Official: "Republic of Fiji", Alpha3: "FJI"},
	"FK": {Name: "Falkland Islands (Malvinas)", Alpha3: "FLK"},
	"FM": {Name: "Micronesia, Federated States of", Official: "Federated States of Micronesia", Alpha3: "FSM"},
	"FO": {Name: "Faroe Islands", Alpha3: "FRO"},
	"FR": {Name: "France", Official: "French Republic", Alpha3: "FRA"},
	"GA": {Name: "Gabon", Official: "Gabonese Republic", Alpha3: "GAB"},
	"GB": {Name: "United Kingdom", Official: "United Kingdom of Great Britain and Northern Ireland", Alpha3: "GBR"},
	"GD": {Name: "Grenada", Alpha3: "GRD"},
	"GE": {Name: "Georgia", Alpha3: "GEO"},
	"GF": {Name: "French Guiana", Alpha3: "GUF"},
	"GG": {Name: "Guernsey", Alpha3: "GGY"},
	"GH": {Name: "Ghana", Official: "Republic of Ghana", Alpha3: "GHA"},
	"GI": {Name: "Gibraltar", Alpha3: "GIB"},
	"GL": {Name: "Greenland", Alpha3: "GRL"},
	"GM": {Name: "Gambia", Official: "Republic of the Gambia", Alpha3: "GMB"},
	"GN": {Name: "Guinea", Official: "Republic of Guinea", Alpha3: "GIN"},
	"GP": {Name: "Guadeloupe", Alpha3: "GLP"},
	"GQ": {Name: "Equatorial Guinea", Official: "Republic of Equatorial Guinea", Alpha3: "GNQ"},
	"GR": {Name: "Greece", Official: "Hellenic Republic", Alpha3: "GRC"},
	"GS": {Name: "South Georgia and the South Sandwich Islands", Alpha3: "SGS"},
	"GT": {Name: "Guatemala", Official: "Republic of Guatemala", Alpha3: "GTM"},
	"GU": {Name: "Guam", Alpha3: "GUM"},
	"GW": {Name: "Guinea-Bissau", Official: "Republic of Guinea-Bissau", Alpha3: "GNB"},
	"GY": {Name: "Guyana", Official: "Republic of Guyana", Alpha3: "GUY"},
	"HK": {Name: "Hong Kong", Official: "Hong Kong Special Administrative Region of China", Alpha3: "HKG"},
	"HM": {Name: "Heard Island and McDonald Islands", Alpha3: "HMD"},
	"HN": {Name: "Honduras", Official: "Republic of Honduras", Alpha3: "HND"},
	"HR": {Name: "Croatia", Official: "Republic of Croatia", Alpha3: "HRV"},
	"HT": {Name: "Haiti", Official: "Republic of Haiti", Alpha3: "HTI"},
	"HU": {Name: "Hungary", Alpha3: "HUN"},
	"ID": {Name: "Indonesia", Official: "Republic of Indonesia", Alpha3: "IDN"},
	"IE": {Name: "Ireland", Alpha3: "IRL"},
	"IL": {Name: "Israel", Official: "State of Israel", Alpha3: "ISR"},
	"IM": {Name: "Isle of Man", Alpha3: "IMN"},
	"IN": {Name: "India", Official: "Republic of India", Alpha3: "IND"},
	"IO": {Name: "British Indian Ocean Territory", Alpha3: "IOT"},
	"IQ": {Name: "Iraq", Official: "Republic of Iraq", Alpha3: "IRQ"},
	"IR": {Name: "Iran, Islamic Republic of", Official: "Islamic Republic of Iran", Alpha3: "IRN"},
	"IS": {Name: "Iceland", Official: "Republic of Iceland", Alpha3: "ISL"},
	"IT": {Name: "Italy", Official: "Italian Republic", Alpha3: "ITA"},
	"JE": {Name: "Jersey", Alpha3: "JEY"},
	"JM": {Name: "Jamaica", Alpha3: "JAM"},
	"JO": {Name: "Jordan", Official: "Hashemite Kingdom of Jordan", Alpha3: "JOR"},
	"JP": {Name: "Japan", Alpha3: "JPN"},
	"KE": {Name: "Kenya", Official: "Republic of Kenya", Alpha3: "KEN"},
	"KG": {Name: "Kyrgyzstan", Official: "Kyrgyz Republic", Alpha3: "KGZ"},
	"KH": {Name: "Cambodia", Official: "Kingdom of Cambodia", Alpha3: "KHM"},
	"KI": {Name: "Kiribati", Official: "Republic of Kiribati", Alpha3: "KIR"},
	"KM": {Name: "Comoros", Official: "Union of the Comoros", Alpha3: "COM"},
	"KN": {Name: "Saint Kitts and Nevis", Alpha3: "KNA"},
	"KP": {Name: "Korea, Democratic People's Republic of", Official: "Democratic People's Republic of Korea", Alpha3: "PRK"},
	"KR": {Name: "Korea, Republic of", Official: "Republic of Korea", Alpha3: "KOR"},
	"KW": {Name: "Kuwait", Official: "State of Kuwait", Alpha3: "KWT"},
	"KY": {Name: "Cayman Islands", Alpha3: "CYM"},
	"KZ": {Name: "Kazakhstan", Official: "Republic of Kazakhstan", Alpha3: "KAZ"},
	"LA": {Name: "Lao People's Democratic Republic", Alpha3: "LAO"},
	"LB": {Name: "Lebanon", Official: "Lebanese Republic", Alpha3: "LBN"},
	"LC": {Name: "Saint Lucia", Alpha3: "LCA"},
	"LI": {Name: "Liechtenstein", Official: "Principality of Liechtenstein", Alpha3: "LIE"},
	"LK": {Name: "Sri Lanka", Official: "Democratic Socialist Republic of Sri Lanka", Alpha3: "LKA"},
	"LR": {Name: "Liberia", Official: "Republic of Liberia", Alpha3: "LBR"},
	"LS": {Name: "Lesotho", Official: "Kingdom of Lesotho", Alpha3: "LSO"},
	"LT": {Name: "Lithuania", Official: "Republic of Lithuania", Alpha3: "LTU"},
	"LU": {Name: "Luxembourg", Official: "Grand Duchy of Luxembourg", Alpha3: "LUX"},
	"LV": {Name: "Latvia", Official: "Republic of Latvia", Alpha3: "LVA"},
	"LY": {Name: "Libya", Official: "State of Libya", Alpha3: "LBY"},
	"MA": {Name: "Morocco", Official: "Kingdom of Morocco", Alpha3: "MAR"},
	"MC": {Name: "Monaco", Official: "Principality of Monaco", Alpha3: "MCO"},
	"MD": {Name: "Moldova, Republic of", Official: "Republic of Moldova", Alpha3: "MDA"},
	"ME": {Name: "Montenegro", Alpha3: "MNE"},
	"MF": {Name: "Saint Martin (French part)", Alpha3: "MAF"},
	"MG": {Name: "Madagascar", Official: "Republic of Madagascar", Alpha3: "MDG"},
	"MH": {Name: "Marshall Islands", Official: "Republic of the Marshall Islands", Alpha3: "MHL"},
	"MK": {Name: "North Macedonia", Official: "Republic of North Macedonia", Alpha3: "MKD"},
	"ML": {Name: "Mali", Official: "Republic of Mali", Alpha3: "MLI"},
	"MM": {Name: "Myanmar", Official: "Republic of Myanmar", Alpha3: "MMR"},
	"MN": {Name: "Mongolia", Alpha3: "MNG"},
	"MO": {Name: "Macao", Official: "Macao Special Administrative Region of China", Alpha3: "MAC"},
	"MP": {Name: "Northern Mariana Islands", Official: "Commonwealth of the Northern Mariana Islands", Alpha3: "MNP"},
	"MQ": {Name: "Martinique", Alpha3: "MTQ"},
	"MR": {Name: "Mauritania", Official: "Islamic Republic of Mauritania", Alpha3: "MRT"},
	"MS": {Name: "Montserrat", Alpha3: "MSR"},
	"MT": {Name: "Malta", Official: "Republic of Malta", Alpha3: "MLT"},
	"MU": {Name: "Mauritius", Official: "Republic of Mauritius", Alpha3: "MUS"},
	"MV": {Name: "Maldives", Official: "Republic of Maldives", Alpha3: "MDV"},
	"MW": {Name: "Malawi", Official: "Republic of Malawi", Alpha3: "MWI"},
	"MX": {Name: "Mexico", Official: "United Mexican States", Alpha3: "MEX"},
	"MY": {Name: "Malaysia", Alpha3: "MYS"},
	"MZ": {Name: "Mozambique", Official: "Republic of Mozambique", Alpha3: "MOZ"},
	"NA": {Name: "Namibia", Official: "Republic of Namibia", Alpha3: "NAM"},
	"NC": {Name: "New Caledonia", Alpha3: "NCL"},
	"NE": {Name: "Niger", Official: "Republic of the Niger", Alpha3: "NER"},
	"NF": {Name: "Norfolk Island", Alpha3: "NFK"},
	"NG": {Name: "Nigeria", Official: "Federal Republic of Nigeria", Alpha3: "NGA"},
	"NI": {Name: "Nicaragua", Official: "Republic of Nicaragua", Alpha3: "NIC"},
	"NL": {Name: "Netherlands", Official: "Kingdom of the Netherlands", Alpha3: "NLD"},
	"NO": {Name: "Norway", Official: "Kingdom of Norway", Alpha3: "NOR"},
	"NP": {Name: "Nepal", Official: "Federal Democratic Republic of Nepal", Alpha3: "NPL"},
	"NR": {Name: "Nauru", Official: "Republic of Nauru", Alpha3: "NRU"},
	"NU": {Name: "Niue", Alpha3: "NIU"},
	"NZ": {Name: "New Zealand", Alpha3: "NZL"},
	"OM": {Name: "Oman", Official: "Sultanate of Oman", Alpha3: "OMN"},
	"PA": {Name: "Panama", Official: "Republic of Panama", Alpha3: "PAN"},
	"PE": {Name: "Peru", Official: "Republic of Peru", Alpha3: "PER"},
	"PF": {Name: "French Polynesia", Alpha3: "PYF"},
	"PG": {Name: "Papua New Guinea", Official: "Independent State of Papua New Guinea", Alpha3: "PNG"},
	"PH": {Name: "Philippines", Official: "Republic of the Philippines", Alpha3: "PHL"},
	"PK": {Name: "Pakistan", Official: "Islamic Republic of Pakistan", Alpha3: "PAK"},
	"PL": {Name: "Poland", Official: "Republic of Poland", Alpha3: "POL"},
	"PM": {Name: "Saint Pierre and Miquelon", Alpha3: "SPM"},
	"PN": {Name: "Pitcairn", Alpha3: "PCN"},
	"PR": {Name: "Puerto Rico", Alpha3: "PRI"},
	"PS": {Name: "Palestine, State of", Official: "State of Palestine", Alpha3: "PSE"},
	"PT": {Name: "Portugal", Official: "Portuguese Republic", Alpha3: "PRT"},
	"PW": {Name: "Palau", Official: "Republic of Palau", Alpha3: "PLW"},
	"PY": {Name: "Paraguay", Official: "Republic of Paraguay", Alpha3: "PRY"},
	"QA": {Name: "Qatar", Official: "State of Qatar", Alpha3: "QAT"},
	"RE": {Name: "Réunion", Alpha3: "REU"},
	"RO": {Name: "Romania", Alpha3: "ROU"},
	"RS": {Name: "Serbia", Official: "Republic of Serbia", Alpha3: "SRB"},
	"RU": {Name: "Russian Federation", Alpha3: "RUS"},
	"RW": {Name: "Rwanda", Official: "Republic of Rwanda", Alpha3: "RWA"},
	"SA": {Name: "Saudi Arabia", Official: "Kingdom of Saudi Arabia", Alpha3: "SAU"},
	"SB": {Name: "Solomon Islands", Alpha3: "SLB"},
	"SC": {Name: "Seychelles", Official: "Republic of Seychelles", Alpha3: "SYC"},
	"SD": {Name: "Sudan", Official: "Republic of the Sudan", Alpha3: "SDN"},
	"SE": {Name: "Sweden", Official: "Kingdom of Sweden", Alpha3: "SWE"},
	"SG": {Name: "Singapore", Official: "Republic of Singapore", Alpha3: "SGP"},
	"SH": {Name: "Saint Helena, Ascension and Tristan da Cunha", Alpha3: "SHN"},
	"SI": {Name: "Slovenia", Official: "Republic of Slovenia", Alpha3: "SVN"},
	"SJ": {Name: "Svalbard and Jan Mayen", Alpha3: "SJM"},
	"SK": {Name: "Slovakia", Official: "Slovak Republic", Alpha3: "SVK"},
	"SL": {Name: "Sierra Leone", Official: "Republic of Sierra Leone", Alpha3: "SLE"},
	"SM": {Name: "San Marino", Official: "Republic of San Marino", Alpha3: "SMR"},
	"SN": {Name: "Senegal", Official: "Republic of Senegal", Alpha3: "SEN"},
	"SO": {Name: "Somalia", Official: "Federal Republic of Somalia", Alpha3: "SOM"},
	"SR": {Name: "Suriname", Official: "Republic of Suriname", Alpha3: "SUR"},
	"SS": {Name: "South Sudan", Official: "Republic of South Sudan", Alpha3: "SSD"},
	"ST": {Name: "Sao Tome and Principe", Official: "Democratic Republic of Sao Tome and Principe", Alpha3: "STP"},
	"SV": {Name: "El Salvador", Official: "Republic of El Salvador", Alpha3: "SLV"},
	"SX": {Name: "Sint Maarten (Dutch part)", Alpha3: "SXM"},
	"SY": {Name: "Syrian Arab Republic", Alpha3: "SYR"},
	"SZ": {Name: "Eswatini", Official: "Kingdom of Eswatini", Alpha3: "SWZ"},
	"TC": {Name: "Turks and Caicos Islands", Alpha3: "TCA"},
	"TD": {Name: "Chad", Official: "Republic of Chad", Alpha3: "TCD"},
	"TF": {Name: "French Southern Territories", Alpha3: "ATF"},
	"TG": {Name: "Togo", Official: "Togolese Republic", Alpha3: "TGO"},
	"TH": {Name: "Thailand", Official: "Kingdom of Thailand", Alpha3: "THA"},
	"TJ": {Name: "Tajikistan", Official: "Republic of Tajikistan", Alpha3: "TJK"},
	"TK": {Name: "Tokelau", Alpha3: "TKL"},
	"TL": {Name: "Timor-Leste", Official: "Democratic Republic of Timor-Leste", Alpha3: "TLS"},
	"TM": {Name: "Turkmenistan", Alpha3: "TKM"},
	"TN": {Name: "Tunisia", Official: "Republic of Tunisia", Alpha3: "TUN"},
	"TO": {Name: "Tonga", Official: "Kingdom of Tonga", Alpha3: "TON"},
	"TR": {Name: "Türkiye", Official: "Republic of Türkiye", Alpha3: "TUR"},
	"TT": {Name: "Trinidad and Tobago", Official: "Republic of Trinidad and Tobago", Alpha3: "TTO"},
	"TV": {Name: "Tuvalu", Alpha3: "TUV"},
	"TW": {Name: "Taiwan, Province of China", Alpha3: "TWN"},
	"TZ": {Name: "Tanzania, United Republic of", Official: "United Republic of Tanzania", Alpha3: "TZA"},
	"UA": {Name: "Ukraine", Alpha3: "UKR"},
	"UG": {Name: "Uganda", Official: "Republic of Uganda", Alpha3: "UGA"},
	"UM": {Name: "United States Minor Outlying Islands", Alpha3: "UMI"},
	"US": {Name: "United States", Official: "United States of America", Alpha3: "USA"},
	"UY": {Name: "Uruguay", Official: "Eastern Republic of Uruguay", Alpha3: "URY"},
	"UZ": {Name: "Uzbekistan", Official: "Republic of Uzbekistan", Alpha3: "UZB"},
	"VA": {Name: "Holy See (Vatican City State)", Alpha3: "VAT"},
	"VC": {Name: "Saint Vincent and the Grenadines", Alpha3: "VCT"},
	"VE": {Name: "Venezuela, Bolivarian Republic of", Official: "Bolivarian Republic of Venezuela", Alpha3: "VEN"},
	"VG": {Name: "Virgin Islands, British", Alpha3: "VGB"},
	"VI": {Name: "Virgin Islands, U.S.", Alpha3: "VIR"},
	"VN": {Name: "Viet Nam", Official: "Socialist Republic of Viet Nam", Alpha3: "VNM"},
	"VU": {Name: "Vanuatu", Official: "Republic of Vanuatu", Alpha3: "VUT"},
	"WF": {Name: "Wallis and Futuna", Alpha3: "WLF"},
	"WS": {Name: "Samoa", Official: "Independent State of Samoa", Alpha3: "WSM"},
	"YE": {Name: "Yemen", Official: "Republic of Yemen", Alpha3: "YEM"},
	"YT": {Name: "Mayotte", Alpha3: "MYT"},
	"ZA": {Name: "South Africa", Official: "Republic of South Africa", Alpha3: "ZAF"},
	"ZM": {Name: "Zambia", Official: "Republic of Zambia", Alpha3: "ZMB"},
	"ZW": {Name: "Zimbabwe", Official: "Republic of Zimbabwe", Alpha3: "ZWE"},
}

// aliases maps spellings seen in surveillance datasets to the alpha-2 key
// of the entry they denote. Keys are lowercase. Most entries restore the
// common English name for registry names that carry ISO qualifiers
// ("Bolivia, Plurinational State of") or parentheticals.
var aliases = map[string]string{
	"bolivia":                          "BO",
	"british virgin islands":           "VG",
	"brunei":                           "BN",
	"burma":                            "MM",
	"cape verde":                       "CV",
	"cocos islands":                    "CC",
	"congo-brazzaville":                "CG",
	"congo-kinshasa":                   "CD",
	"cote d'ivoire":                    "CI",
	"côte d’ivoire":                    "CI",
	"democratic republic of congo":     "CD",
	"democratic republic of the congo": "CD",
	"dr congo":                         "CD",
	"drc":                              "CD",
	"east timor":                       "TL",
	"falkland islands":                 "FK",
	"great britain":                    "GB",
	"holy see":                         "VA",
	"iran":                             "IR",
	"ivory coast":                      "CI",
	"laos":                             "LA",
	"macau":                            "MO",
	"macedonia":                        "MK",
	"micronesia":                       "FM",
	"moldova":                          "MD",
	"north korea":                      "KP",
	"palestine":                        "PS",
	"pitcairn islands":                 "PN",
	"republic of ireland":              "IE",
	"russia":                           "RU",
	"saint helena":                     "SH",
	"saint martin":                     "MF",
	"sao tome & principe":              "ST",
	"sint maarten":                     "SX",
	"south korea":                      "KR",
	"swaziland":                        "SZ",
	"syria":                            "SY",
	"são tomé and príncipe":            "ST",
	"taiwan":                           "TW",
	"tanzania":                         "TZ",
	"the gambia":                       "GM",
	"the netherlands":                  "NL",
	"timor leste":                      "TL",
	"turkey":                           "TR",
	"uae":                              "AE",
	"uk":                               "GB",
	"us virgin islands":                "VI",
	"usa":                              "US",
	"vatican":                          "VA",
	"vatican city":                     "VA",
	"venezuela":                        "VE",
	"vietnam":                          "VN",
}
