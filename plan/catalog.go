package plan

// catalog is the fixed country table, ported from the ITU assignments.
// Order is significant: [Resolve] documents a last-entry-wins tie-break,
// and [ResolveNumber] falls back to the first entry with a calling code.
var catalog = []Country{
	{93, "AF", nil},                    // Afghanistan
	{358, "AX", ac("18")},              // Åland Islands
	{355, "AL", nil},                   // Albania
	{213, "DZ", nil},                   // Algeria
	{1, "AS", ac("684")},               // American Samoa
	{376, "AD", nil},                   // Andorra
	{244, "AO", nil},                   // Angola
	{1, "AI", ac("264")},               // Anguilla
	{1, "AG", ac("268")},               // Antigua and Barbuda
	{54, "AR", nil},                    // Argentina
	{374, "AM", nil},                   // Armenia
	{297, "AW", nil},                   // Aruba
	{61, "AU", nil},                    // Australia
	{672, "AQ", ac("1")},               // Australian Antarctic Territories
	{43, "AT", nil},                    // Austria
	{994, "AZ", nil},                   // Azerbaijan
	{1, "BS", ac("242")},               // Bahamas
	{973, "BH", nil},                   // Bahrain
	{880, "BD", nil},                   // Bangladesh
	{1, "BB", ac("246")},               // Barbados
	{375, "BY", nil},                   // Belarus
	{32, "BE", nil},                    // Belgium
	{501, "BZ", nil},                   // Belize
	{229, "BJ", nil},                   // Benin
	{1, "BM", ac("441")},               // Bermuda
	{975, "BT", nil},                   // Bhutan
	{591, "BO", nil},                   // Bolivia
	{599, "BQ", ac("7")},               // Bonaire
	{387, "BA", nil},                   // Bosnia and Herzegovina
	{267, "BW", nil},                   // Botswana
	{55, "BR", nil},                    // Brazil
	{246, "IO", nil},                   // British Indian Ocean Territory
	{1, "VG", ac("284")},               // British Virgin Islands
	{673, "BN", nil},                   // Brunei
	{359, "BG", nil},                   // Bulgaria
	{226, "BF", nil},                   // Burkina Faso
	{257, "BI", nil},                   // Burundi
	{855, "KH", nil},                   // Cambodia
	{237, "CM", nil},                   // Cameroon
	{1, "CA", ac("204", "226", "236", "249", "250", "263", "289", "306", "343", "365", "367", "368", "403", "416", "418", "431", "437", "438", "450", "468", "474", "506", "514", "519", "548", "579", "581", "584", "587", "604", "613", "639", "647", "673", "683", "705", "709", "742", "753", "778", "780", "782", "807", "819", "825", "867", "873", "902", "905")}, // Canada
	{238, "CV", nil},                   // Cape Verde
	{1, "KY", ac("345")},               // Cayman Islands
	{236, "CF", nil},                   // Central African Republic
	{235, "TD", nil},                   // Chad
	{56, "CL", nil},                    // Chile
	{86, "CN", nil},                    // China
	{61, "CX", ac("89164")},            // Christmas Island
	{61, "CC", ac("89162")},            // Cocos Islands
	{57, "CO", nil},                    // Colombia
	{269, "KM", nil},                   // Comoros
	{242, "CG", nil},                   // Congo
	{682, "CK", nil},                   // Cook Islands
	{506, "CR", nil},                   // Costa Rica
	{385, "HR", nil},                   // Croatia
	{53, "CU", nil},                    // Cuba
	{599, "CW", ac("9")},               // Curaçao
	{357, "CY", nil},                   // Cyprus
	{420, "CZ", nil},                   // Czech Republic
	{243, "CD", nil},                   // Democratic Republic of the Congo
	{45, "DK", nil},                    // Denmark
	{253, "DJ", nil},                   // Djibouti
	{1, "DM", ac("767")},               // Dominica
	{1, "DO", ac("809", "829", "849")}, // Dominican Republic
	{670, "TL", nil},                   // East Timor
	{593, "EC", nil},                   // Ecuador
	{20, "EG", nil},                    // Egypt
	{503, "SV", nil},                   // El Salvador
	{240, "GQ", nil},                   // Equatorial Guinea
	{291, "ER", nil},                   // Eritrea
	{372, "EE", nil},                   // Estonia
	{251, "ET", nil},                   // Ethiopia
	{500, "FK", nil},                   // Falkland Islands
	{298, "FO", nil},                   // Faroe Islands
	{679, "FJ", nil},                   // Fiji
	{358, "FI", nil},                   // Finland
	{33, "FR", nil},                    // France
	{594, "GF", nil},                   // French Guiana
	{689, "PF", nil},                   // French Polynesia
	{241, "GA", nil},                   // Gabon
	{220, "GM", nil},                   // Gambia
	{995, "GE", nil},                   // Georgia
	{49, "DE", nil},                    // Germany
	{233, "GH", nil},                   // Ghana
	{350, "GI", nil},                   // Gibraltar
	{30, "GR", nil},                    // Greece
	{299, "GL", nil},                   // Greenland
	{1, "GD", ac("473")},               // Grenada
	{590, "GP", nil},                   // Guadeloupe
	{1, "GU", ac("671")},               // Guam
	{502, "GT", nil},                   // Guatemala
	{44, "GG", ac("1481", "7781", "7839", "7911")}, // Guernsey
	{224, "GN", nil},                   // Guinea
	{245, "GW", nil},                   // Guinea-Bissau
	{592, "GY", nil},                   // Guyana
	{509, "HT", nil},                   // Haiti
	{504, "HN", nil},                   // Honduras
	{852, "HK", nil},                   // Hong Kong
	{36, "HU", nil},                    // Hungary
	{354, "IS", nil},                   // Iceland
	{91, "IN", nil},                    // India
	{62, "ID", nil},                    // Indonesia
	{98, "IR", nil},                    // Iran
	{964, "IQ", nil},                   // Iraq
	{353, "IE", nil},                   // Ireland
	{44, "IM", ac("1624", "7524", "7624", "7924")}, // Isle of Man
	{972, "IL", nil},                   // Israel
	{39, "IT", nil},                    // Italy
	{225, "CI", nil},                   // Ivory Coast
	{1, "JM", ac("658", "876")},        // Jamaica
	{47, "SJ", ac("79")},               // Jan Mayen
	{81, "JP", nil},                    // Japan
	{44, "JE", ac("1534")},             // Jersey
	{962, "JO", nil},                   // Jordan
	{7, "KZ", ac("6", "7")},            // Kazakhstan
	{254, "KE", nil},                   // Kenya
	{686, "KI", nil},                   // Kiribati
	{850, "KP", nil},                   // North Korea
	{82, "KR", nil},                    // South Korea
	{383, "XK", nil},                   // Kosovo
	{965, "KW", nil},                   // Kuwait
	{996, "KG", nil},                   // Kyrgyzstan
	{856, "LA", nil},                   // Laos
	{371, "LV", nil},                   // Latvia
	{961, "LB", nil},                   // Lebanon
	{266, "LS", nil},                   // Lesotho
	{231, "LR", nil},                   // Liberia
	{218, "LY", nil},                   // Libya
	{423, "LI", nil},                   // Liechtenstein
	{370, "LT", nil},                   // Lithuania
	{352, "LU", nil},                   // Luxembourg
	{853, "MO", nil},                   // Macau
	{389, "MK", nil},                   // North Macedonia
	{261, "MG", nil},                   // Madagascar
	{265, "MW", nil},                   // Malawi
	{60, "MY", nil},                    // Malaysia
	{960, "MV", nil},                   // Maldives
	{223, "ML", nil},                   // Mali
	{356, "MT", nil},                   // Malta
	{692, "MH", nil},                   // Marshall Islands
	{596, "MQ", nil},                   // Martinique
	{222, "MR", nil},                   // Mauritania
	{230, "MU", nil},                   // Mauritius
	{262, "YT", ac("269", "639")},      // Mayotte
	{52, "MX", nil},                    // Mexico
	{691, "FM", nil},                   // Micronesia
	{373, "MD", nil},                   // Moldova
	{377, "MC", nil},                   // Monaco
	{976, "MN", nil},                   // Mongolia
	{382, "ME", nil},                   // Montenegro
	{1, "MS", ac("664")},               // Montserrat
	{212, "MA", nil},                   // Morocco
	{258, "MZ", nil},                   // Mozambique
	{95, "MM", nil},                    // Myanmar
	{264, "NA", nil},                   // Namibia
	{674, "NR", nil},                   // Nauru
	{977, "NP", nil},                   // Nepal
	{31, "NL", nil},                    // Netherlands
	{687, "NC", nil},                   // New Caledonia
	{64, "NZ", nil},                    // New Zealand
	{505, "NI", nil},                   // Nicaragua
	{227, "NE", nil},                   // Niger
	{234, "NG", nil},                   // Nigeria
	{683, "NU", nil},                   // Niue
	{672, "NF", ac("3")},               // Norfolk Island
	{1, "MP", ac("670")},               // Northern Mariana Islands
	{47, "NO", nil},                    // Norway
	{968, "OM", nil},                   // Oman
	{92, "PK", nil},                    // Pakistan
	{680, "PW", nil},                   // Palau
	{970, "PS", nil},                   // Palestine
	{507, "PA", nil},                   // Panama
	{675, "PG", nil},                   // Papua New Guinea
	{595, "PY", nil},                   // Paraguay
	{51, "PE", nil},                    // Peru
	{63, "PH", nil},                    // Philippines
	{48, "PL", nil},                    // Poland
	{351, "PT", nil},                   // Portugal
	{1, "PR", ac("787", "930")},        // Puerto Rico
	{974, "QA", nil},                   // Qatar
	{262, "RE", nil},                   // Réunion
	{40, "RO", nil},                    // Romania
	{7, "RU", nil},                     // Russia
	{250, "RW", nil},                   // Rwanda
	{290, "SH", nil},                   // Saint Helena
	{1, "KN", ac("869")},               // Saint Kitts and Nevis
	{1, "LC", ac("758")},               // Saint Lucia
	{508, "PM", nil},                   // Saint Pierre and Miquelon
	{1, "VC", ac("784")},               // Saint Vincent and the Grenadines
	{685, "WS", nil},                   // Samoa
	{378, "SM", nil},                   // San Marino
	{239, "ST", nil},                   // São Tomé and Príncipe
	{966, "SA", nil},                   // Saudi Arabia
	{221, "SN", nil},                   // Senegal
	{381, "RS", nil},                   // Serbia
	{248, "SC", nil},                   // Seychelles
	{232, "SL", nil},                   // Sierra Leone
	{65, "SG", nil},                    // Singapore
	{421, "SK", nil},                   // Slovakia
	{386, "SI", nil},                   // Slovenia
	{677, "SB", nil},                   // Solomon Islands
	{252, "SO", nil},                   // Somalia
	{27, "ZA", nil},                    // South Africa
	{211, "SS", nil},                   // South Sudan
	{34, "ES", nil},                    // Spain
	{94, "LK", nil},                    // Sri Lanka
	{249, "SD", nil},                   // Sudan
	{597, "SR", nil},                   // Suriname
	{47, "SJ", nil},                    // Svalbard and Jan Mayen
	{268, "SZ", nil},                   // Eswatini
	{46, "SE", nil},                    // Sweden
	{41, "CH", nil},                    // Switzerland
	{963, "SY", nil},                   // Syria
	{886, "TW", nil},                   // Taiwan
	{992, "TJ", nil},                   // Tajikistan
	{255, "TZ", nil},                   // Tanzania
	{66, "TH", nil},                    // Thailand
	{228, "TG", nil},                   // Togo
	{690, "TK", nil},                   // Tokelau
	{676, "TO", nil},                   // Tonga
	{1, "TT", ac("868")},               // Trinidad and Tobago
	{216, "TN", nil},                   // Tunisia
	{90, "TR", nil},                    // Turkey
	{993, "TM", nil},                   // Turkmenistan
	{1, "TC", ac("649")},               // Turks and Caicos Islands
	{688, "TV", nil},                   // Tuvalu
	{256, "UG", nil},                   // Uganda
	{380, "UA", nil},                   // Ukraine
	{971, "AE", nil},                   // United Arab Emirates
	{44, "GB", nil},                    // United Kingdom
	{1, "US", nil},                     // United States
	{598, "UY", nil},                   // Uruguay
	{998, "UZ", nil},                   // Uzbekistan
	{678, "VU", nil},                   // Vanuatu
	{379, "VA", nil},                   // Vatican City
	{58, "VE", nil},                    // Venezuela
	{84, "VN", nil},                    // Vietnam
	{1, "VI", ac("340")},               // US Virgin Islands
	{681, "WF", nil},                   // Wallis and Futuna
	{212, "EH", nil},                   // Western Sahara
	{967, "YE", nil},                   // Yemen
	{260, "ZM", nil},                   // Zambia
	{255, "TZ", nil},                   // Zanzibar
	{263, "ZW", nil},                   // Zimbabwe
}

func ac(codes ...string) []string { return codes }
