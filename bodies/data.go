package bodies

// Catalog values: gravitational parameters from the DE440 ephemeris,
// radii from the pck00011 kernel, rotational elements per the WGCCRE
// 2009 and 2015 reports with coefficients converted to radians.

type originData struct {
	id       int
	name     string
	gm       float64
	hasGM    bool
	radii    Radii
	hasRadii bool
	mean     float64
	elements *elementSet
}

var catalog = [...]originData{
	Sun: {id: 10, name: "Sun", gm: 132712440041.27942, hasGM: true,
		radii: Radii{695700, 695700, 695700}, hasRadii: true, mean: 695700, elements: &elementsSun},
	Mercury: {id: 199, name: "Mercury", gm: 22031.868551400003, hasGM: true,
		radii: Radii{2440.53, 2440.53, 2438.26}, hasRadii: true, mean: 2439.7733333333335, elements: &elementsMercury},
	Venus: {id: 299, name: "Venus", gm: 324858.592, hasGM: true,
		radii: Radii{6051.8, 6051.8, 6051.8}, hasRadii: true, mean: 6051.8, elements: &elementsVenus},
	Earth: {id: 399, name: "Earth", gm: 398600.43550702266, hasGM: true,
		radii: Radii{6378.1366, 6378.1366, 6356.7519}, hasRadii: true, mean: 6371.008366666666, elements: &elementsEarth},
	Mars: {id: 499, name: "Mars", gm: 42828.37362069909, hasGM: true,
		radii: Radii{3396.19, 3396.19, 3376.2}, hasRadii: true, mean: 3389.5266666666666, elements: &elementsMars},
	Jupiter: {id: 599, name: "Jupiter", gm: 126686531.9003704, hasGM: true,
		radii: Radii{71492, 71492, 66854}, hasRadii: true, mean: 69946, elements: &elementsJupiter},
	Saturn: {id: 699, name: "Saturn", gm: 37931206.23436167, hasGM: true,
		radii: Radii{60268, 60268, 54364}, hasRadii: true, mean: 58300, elements: &elementsSaturn},
	Uranus: {id: 799, name: "Uranus", gm: 5793951.256527211, hasGM: true,
		radii: Radii{25559, 25559, 24973}, hasRadii: true, mean: 25363.666666666668, elements: &elementsUranus},
	Neptune: {id: 899, name: "Neptune", gm: 6835103.145462294, hasGM: true,
		radii: Radii{24764, 24764, 24341}, hasRadii: true, mean: 24623, elements: &elementsNeptune},
	Pluto: {id: 999, name: "Pluto", gm: 869.6138177608748, hasGM: true,
		radii: Radii{1188.3, 1188.3, 1188.3}, hasRadii: true, mean: 1188.3, elements: &elementsPluto},
	SolarSystemBarycenter: {id: 0, name: "Solar System Barycenter"},
	MercuryBarycenter:     {id: 1, name: "Mercury Barycenter", gm: 22031.868551400003, hasGM: true},
	VenusBarycenter:       {id: 2, name: "Venus Barycenter", gm: 324858.592, hasGM: true},
	EarthBarycenter:       {id: 3, name: "Earth Barycenter", gm: 403503.2356254802, hasGM: true},
	MarsBarycenter:        {id: 4, name: "Mars Barycenter", gm: 42828.3758157561, hasGM: true},
	JupiterBarycenter:     {id: 5, name: "Jupiter Barycenter", gm: 126712764.09999998, hasGM: true},
	SaturnBarycenter:      {id: 6, name: "Saturn Barycenter", gm: 37940584.8418, hasGM: true},
	UranusBarycenter:      {id: 7, name: "Uranus Barycenter", gm: 5794556.3999999985, hasGM: true},
	NeptuneBarycenter:     {id: 8, name: "Neptune Barycenter", gm: 6836527.100580399, hasGM: true},
	PlutoBarycenter:       {id: 9, name: "Pluto Barycenter", gm: 975.5, hasGM: true},
	Moon: {id: 301, name: "Moon", gm: 4902.8001184575496, hasGM: true,
		radii: Radii{1737.4, 1737.4, 1737.4}, hasRadii: true, mean: 1737.4, elements: &elementsMoon},
}

var elementsSun = elementSet{
	ra:  rotationalElement{kind: rightAscension, c0: 4.993910588731375},
	dec: rotationalElement{kind: declination, c0: 1.1147417932487782},
	w:   rotationalElement{kind: rotation, c0: 1.4691483511587469, c1: 0.24756448241988369},
}

var npMercury = nutationPrecession{
	theta0: []float64{
		3.0506799486005773, 6.101359897201155, 2.868854538622146, 5.919534488968053,
		2.6870291303890443,
	},
	theta1: []float64{
		2608.7878923240937, 5217.575784648187, 7826.363676972282, 10435.151569296375,
		13043.939461620466,
	},
}

var elementsMercury = elementSet{
	nutPrec: &npMercury,
	ra:      rotationalElement{kind: rightAscension, c0: 4.904554967017021, c1: -0.0005724679946541401},
	dec:     rotationalElement{kind: declination, c0: 1.0719026867585775, c1: -8.552113334772214e-05},
	w: rotationalElement{kind: rotation, c0: 5.752584270622286, c1: 0.10713722462923113, c: []float64{
		0.0001862714861495712, -1.9601618296223117e-05, -1.92684349420174e-06, -4.4313909708136026e-07,
		-9.965830028887623e-08,
	}},
}

var elementsVenus = elementSet{
	ra:  rotationalElement{kind: rightAscension, c0: 4.760560067739733},
	dec: rotationalElement{kind: declination, c0: 1.1721631256393916},
	w:   rotationalElement{kind: rotation, c0: 2.7960174616949156, c1: -0.025854762996317376},
}

var npEarth = nutationPrecession{
	theta0: []float64{
		2.1824469631563095, 4.364876473020098, 4.537995681525416, 3.0826877913349846,
		6.240058221362807, 5.438253962996612, 2.355548718369107, 4.827877416989155,
		0.5973563897875792, 0.2641381289968218, 2.0899096062155698, 4.188109526378113,
		0.4372573375021394,
	},
	theta1: []float64{
		-33.781483888495835, -67.56296777699167, 8294.909972626925, 8504.459388212737,
		628.3019668015924, 16833.15084472816, 8328.69145651542, 209.54947933396397,
		1114.6285779726247, -101.3444516654875, 2.301053255936537, 104.77473966698199,
		8261.12848873843,
	},
}

var elementsEarth = elementSet{
	nutPrec: &npEarth,
	ra:      rotationalElement{kind: rightAscension, c0: 0.0, c1: -0.011187560505283653},
	dec:     rotationalElement{kind: declination, c0: 1.5707963267948966, c1: -0.009721483933608416},
	w:       rotationalElement{kind: rotation, c0: 3.3186912127896577, c1: 6.3003876824396166},
}

var npMars = nutationPrecession{
	theta0: []float64{
		3.328804809897935, 0.37470342287773584, 5.809517398292802, 6.892873571600945,
		3.3097152567180146, 2.120032883264378, 4.032588225058434, 4.387288948439982,
		3.8045796985836846, 3.424288764152381, 3.4730520762801462, 3.9495523217086292,
		4.357448194643978, 4.645778664015252, 1.3857704297725961, 2.136869016190709,
		0.751510868094019, 1.0064158213753553, 1.3871248750853138, 2.9029314796567682,
		2.252727410236719, 0.6344650043848296, 0.9890544553471146, 1.1757236496733376,
		1.8289772979888115, 1.664898441223219,
	},
	theta1: []float64{
		277.80594525842264, 555.6129894920322, 334.05422022489097, 668.125936040531,
		719340.2120445863, 11.523153020184504, 11.536473384554899, 23.047098122619843,
		668.1113614443373, 334.05316148477937, 334.0469780000094, 668.1268926511307,
		1002.1807129125305, 1336.235189496269, 0.008801023466045386, 334.054984682245,
		668.1273150051017, 1002.1811764929237, 1336.2354112473317, 0.008801023466045386,
		334.05659172556966, 668.130317528175, 1002.1842799588599, 1336.2285297823557,
		1670.2877519268022, 0.008801023466045386,
	},
}

var elementsMars = elementSet{
	nutPrec: &npMars,
	ra: rotationalElement{kind: rightAscension, c0: 5.5373921900749785, c1: -0.001907216743164288, c: []float64{
		0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 1.186823891356144e-06, 4.153883619746505e-06,
		9.075712110370513e-07, 1.5707963267948966e-07, 0.007313924403529878,
	}},
	dec: rotationalElement{kind: declination, c0: 0.9500266243444937, c1: -0.0010170216810942417, c: []float64{
		0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 8.90117918517108e-07,
		2.460914245312005e-06, 5.410520681182422e-07, 8.726646259971648e-08, 0.02777297060138025,
	}},
	w: rotationalElement{kind: rotation, c0: 3.0726497570349416, c1: 6.12422041248567, c: []float64{
		0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0,
		2.530727415391778e-06, 2.7401669256310974e-06, 6.981317007977319e-07, 1.7453292519943295e-08,
		1.7453292519943295e-08, 0.010202182516192693,
	}},
}

var npJupiter = nutationPrecession{
	theta0: []float64{
		1.2796754075622423, 0.42970006184100396, 4.9549897464119015, 6.2098814785958245,
		2.092649773141201, 4.010766621082969, 6.147922290150026, 1.9783307071355725,
		2.5593508151244846, 0.8594001236820079, 1.734171606432425, 3.0699533280603655,
		5.241627996900319, 1.9898901100379935, 0.864134346731335,
	},
	theta1: []float64{
		1596.503281347521, 787.7927551311844, 84.66068602648895, 20.792107379008446,
		4.574507969477138, 1.1222467090323538, 41.58421475801689, 105.9414855960558,
		3193.006562695042, 1575.5855102623689, 84.65553032387855, 20.80363527871787,
		4.582318317879813, 105.94580703128374, 1.1222467090323538,
	},
}

var elementsJupiter = elementSet{
	nutPrec: &npJupiter,
	ra: rotationalElement{kind: rightAscension, c0: 4.6784701644349695, c1: -0.00011342894808711148, c: []float64{
		0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 2.0420352248333656e-06, 1.6371188383706813e-05,
		2.4993114888558796e-05, 5.235987755982989e-07, 3.752457891787809e-05,
	}},
	dec: rotationalElement{kind: declination, c0: 1.1256553894213766, c1: 4.211479485062318e-05, c: []float64{
		0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 8.726646259971648e-07, 7.051130178057092e-06,
		1.0768681484805013e-05, -2.2689280275926283e-07, 1.616174887346749e-05,
	}},
	w: rotationalElement{kind: rotation, c0: 4.973315703557842, c1: 15.193719457141356},
}

var npSaturn = nutationPrecession{
	theta0: []float64{
		6.166597313146365, 0.5012585611727715, 3.0962140930379407, 5.235987755982989,
		5.523094417936056, 6.0248765778844255, 12.33319462629273, 1.002517122345543,
	},
	theta1: []float64{
		1321.331180819591, 1321.331180819591, -637.14117008679, -126.11574641985825,
		8.834856673595295, -17.73778118801837, 2642.662361639182, 2642.662361639182,
	},
}

var elementsSaturn = elementSet{
	nutPrec: &npSaturn,
	ra:      rotationalElement{kind: rightAscension, c0: 0.7084116900919784, c1: -0.0006283185307179586},
	dec:     rotationalElement{kind: declination, c0: 1.457995697238503, c1: -6.981317007977319e-05},
	w:       rotationalElement{kind: rotation, c0: 0.6789330790257941, c1: 14.151023151973554},
}

var npUranus = nutationPrecession{
	theta0: []float64{
		2.0202186091834364, 2.4729570171507653, 2.356718088967943, 1.0780898789568973,
		4.351454891072263, 0.7655014099247129, 1.3554226970987964, 2.746450110938277,
		1.776919711455427, 2.419724474964938, 1.784250094313803, 5.522396286235258,
		5.3059754589879615, 5.388005933831694, 5.948431156647074, 4.522846223618106,
		3.568500188627606, 11.044792572470516,
	},
	theta1: []float64{
		959.7891933286942, 731.077582955928, 522.3307938967249, 449.1358738582876,
		427.10754977009157, 388.83160660922994, 354.1171823199879, 290.6454915444109,
		224.66977689099764, 140.70512817020406, -35.32930378471962, 49.9855316454168,
		-0.9065240134858548, -1.626123264083117, -1.314581992602129, -8.810596596992575,
		-70.65860756943924, 99.9710632908336,
	},
}

var elementsUranus = elementSet{
	nutPrec: &npUranus,
	ra:      rotationalElement{kind: rightAscension, c0: 4.4909241515991285},
	dec:     rotationalElement{kind: declination, c0: -0.2648537139901395},
	w:       rotationalElement{kind: rotation, c0: 3.557155548489643, c1: -8.746893698960328},
}

var npNeptune = nutationPrecession{
	theta0: []float64{
		6.245660728261709, 5.653470513060032, 3.848625533572696, 6.183177941040311,
		1.3144074596769295, 0.6171484235051949, 2.4890140462691135, 3.104068074671915,
		11.306941026120064, 6.20813614934383, 9.312204224015744, 12.41627229868766,
		15.520340373359575, 18.624408448031488, 21.728476522703406, 24.83254459737532,
		27.936612672047236,
	},
	theta1: []float64{
		0.9130864514733535, 1092.6913034790819, 961.0515899766616, 812.7038395448996,
		455.6949957202075, 250.02539666519567, 49.29857005183183, 0.9130864514733535,
		2185.3826069581637, 1.826172902946707, 2.7392593544200605, 3.652345805893414,
		4.565432257366767, 5.478518708840121, 6.391605160313474, 7.304691611786828,
		8.21777806326018,
	},
}

var elementsNeptune = elementSet{
	nutPrec: &npNeptune,
	ra: rotationalElement{kind: rightAscension, c0: 5.224817648770225, c: []float64{
		0.012217304763960306, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0,
	}},
	dec: rotationalElement{kind: declination, c0: 0.7585200929167356, c: []float64{
		-0.00890117918517108, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0,
	}},
	w: rotationalElement{kind: rotation, c0: 4.362939157550385, c1: 9.444670799468602, c: []float64{
		-0.008377580409572781, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0,
	}},
}

var elementsPluto = elementSet{
	ra:  rotationalElement{kind: rightAscension, c0: 2.3211657321048187},
	dec: rotationalElement{kind: declination, c0: -0.10756464180041053},
	w:   rotationalElement{kind: rotation, c0: 5.283024379324235, c1: 0.9837115923543857},
}

var elementsMoon = elementSet{
	nutPrec: &npEarth,
	ra: rotationalElement{kind: rightAscension, c0: 4.712299968592838, c1: 5.4105206811824215e-05, c: []float64{
		-0.06769608569710406, -0.0021013764194011725, 0.0012217304763960308, -0.0003001966313430247,
		0.0, 0.0001256637061435917, 0.0, 0.0,
		0.0, -9.075712110370513e-05, 0.0, 0.0,
		7.504915783575618e-05,
	}},
	dec: rotationalElement{kind: declination, c0: 1.161328121643011, c1: 0.00022689280275926284, c: []float64{
		0.02691123173650057, 0.0004171336912266448, -0.00048520153205442357, 0.0001186823891356144,
		0.0, -5.061454830783555e-05, 1.5707963267948964e-05, 0.0,
		0.0, 1.3962634015954637e-05, 0.0, 0.0,
		-1.5707963267948964e-05,
	}},
	w: rotationalElement{kind: rotation, c0: 0.668832858644503, c1: 0.22997083313948888, c2: -2.4434609527920614e-14, c: []float64{
		0.06215117466351808, 0.00210835773640915, -0.0011205013797803594, 0.0002757620218151041,
		0.0004398229715025711, -0.00011519173063162575, -8.203047484373349e-05, -8.028514559173915e-05,
		4.8869219055841225e-05, 9.075712110370513e-05, 6.981317007977319e-05, 3.316125578789226e-05,
		-7.67944870877505e-05,
	}},
}
