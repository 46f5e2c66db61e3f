package sprites

// art holds the flyer frames as text. '#' is ink (image and mask), '.' is
// opaque background (mask only) and ' ' is transparent.
var art = [Count][Size]string{
	{ // 0: wings up
		"   ##                           ",
		"  #..#                          ",
		" #..#.#                         ",
		" #.#..#                         ",
		"#..#..#                         ",
		"#.#..#.#                        ",
		"#.#..#.#                        ",
		" #.#.#..#                       ",
		" #.#..#.#                       ",
		"  #.#.#..#                      ",
		"  #..#.#.#                      ",
		"   #.#..#.#                     ",
		"    #.#.#.####################  ",
		"     #..#.#...................# ",
		"      ##..#...######..######..# ",
		"        ###...................# ",
		"          #...................# ",
		"          #................#### ",
		"          #................#.## ",
		"          #................#### ",
		"          #...................# ",
		"          #...................# ",
		"          #.#################.# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"           ###################  ",
		"            ##             ##   ",
	},
	{ // 1: wings half up
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"  ###                           ",
		" #...##                         ",
		"#..##..#                        ",
		"#.#..##.#                       ",
		" #.##..#.#                      ",
		" #...##.#.#                     ",
		"  ##...#..####################  ",
		"    ##....#...................# ",
		"      ####....######..######..# ",
		"          #...................# ",
		"          #...................# ",
		"          #................#### ",
		"          #................#.## ",
		"          #................#### ",
		"          #...................# ",
		"          #...................# ",
		"          #.#################.# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"           ###################  ",
		"            ##             ##   ",
	},
	{ // 2: wings down
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"           ###################  ",
		"      ####....................# ",
		"    ##....#...######..######..# ",
		"  ##..##..#...................# ",
		" #..##..#.#...................# ",
		"#..#..##.##................#### ",
		"#.#..#..# #................#.## ",
		"#.#.#..#  #................#### ",
		"#.#.#.#   #...................# ",
		" #.#.#    #...................# ",
		" #..#     #.#################.# ",
		"  ##      #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"           ###################  ",
		"            ##             ##   ",
	},
	{ // 3: wings half down
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"      ####                      ",
		"  #####...####################  ",
		" #....###.#...................# ",
		"#..###...##...######..######..# ",
		"#.#...### #...................# ",
		" #.###..# #...................# ",
		"  #...##  #................#### ",
		"   ###    #................#.## ",
		"          #................#### ",
		"          #...................# ",
		"          #...................# ",
		"          #.#################.# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"          #...................# ",
		"           ###################  ",
		"            ##             ##   ",
	},
	{ // 4: toast
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"                                ",
		"         ###############        ",
		"        #...............#       ",
		"       ###################      ",
		"      #...................#     ",
		"      #...................#     ",
		"      #........#..........#     ",
		"      #...#...............#     ",
		"      #..............#....#     ",
		"      #...................#     ",
		"      #...................#     ",
		"      #...........#.......#     ",
		"      #.....#.............#     ",
		"      #...................#     ",
		"      #................#..#     ",
		"      #...................#     ",
		"      #...................#     ",
		"      #..#......#.........#     ",
		"      #...................#     ",
		"      #...................#     ",
		"      #......#.......#....#     ",
		"      #...................#     ",
		"      #...................#     ",
		"       ###################      ",
		"                                ",
		"                                ",
		"                                ",
	},
}
