package similarity

// Fixed empirical quantile tables (1st through 100th percentile) of the
// global and local error distributions, estimated from reference song
// pairs. They are read-only process-wide constants; the probability mapper
// is the only consumer.
var globalPercentiles = [100]float64{
	2.7893880973591956,
	3.2962860661126028,
	3.6763561978570047,
	3.9903175818085401,
	4.2647971429922515,
	4.511390597272193,
	4.7448091439854174,
	4.9668298676608709,
	5.1784511373759079,
	5.3865297586390692,
	5.5900396066874416,
	5.7895356873470076,
	5.9839121582465173,
	6.1718656123535371,
	6.355188436571777,
	6.5325771355187232,
	6.7075597346113218,
	6.8806072514128793,
	7.0528705915985537,
	7.2253815664580694,
	7.3994221676828484,
	7.5746783497994485,
	7.750008451799232,
	7.9259129026605786,
	8.103695818793252,
	8.2824368634698917,
	8.4640366157916525,
	8.6483413756151499,
	8.8351965111336792,
	9.024280345378779,
	9.2166563694487476,
	9.4123031946041635,
	9.612083602171003,
	9.8169694455270005,
	10.027745850777775,
	10.245546956989049,
	10.469980912767237,
	10.69868479822796,
	10.933743969041702,
	11.176611334407898,
	11.429308378097662,
	11.691003205680229,
	11.961836845061267,
	12.242871834376908,
	12.533937062721758,
	12.836717819804822,
	13.150706518971614,
	13.478565408906034,
	13.819487507745411,
	14.170434803895265,
	14.529629145766213,
	14.895863058201339,
	15.271471461930627,
	15.665109973931358,
	16.073441155698379,
	16.49699896439806,
	16.935129898623885,
	17.384317287140082,
	17.851941446996129,
	18.328570258362426,
	18.822320695176455,
	19.333842943405926,
	19.866848273946427,
	20.420853351028764,
	20.983904846323711,
	21.557953956492426,
	22.146661311694615,
	22.761697502739519,
	23.385959835687743,
	24.020880856831976,
	24.66570480393872,
	25.321162718556216,
	25.98985104516359,
	26.674231800901754,
	27.369615207439903,
	28.082936572810492,
	28.841851671964061,
	29.651977028216479,
	30.517950815313291,
	31.454801380892739,
	32.441576898504564,
	33.483331925390246,
	34.601911814177953,
	35.823537115048545,
	37.202677922221881,
	38.896811368115841,
	40.974280589399683,
	43.440704677102296,
	46.404093588109859,
	49.624613928106967,
	54.991635237001617,
	62.972011934528851,
	72.678478140971535,
	91.289159909911859,
	117.36869732319082,
	304.54418965031192,
	503.84382308117381,
	914.95721910297993,
	1643.9748972876507,
	6301.0969631170328,
}

var localPercentiles = [100]float64{
	0.54599694348614791,
	0.77518777088616497,
	0.96136423585440645,
	1.1249268277434958,
	1.2752329009248495,
	1.4167332298057389,
	1.5526729522929845,
	1.6837473735354551,
	1.8110095687311403,
	1.9355849483541776,
	2.0583184987682337,
	2.1791146864612934,
	2.2989471625151658,
	2.4172227039628988,
	2.5351401729993635,
	2.6530292721305426,
	2.7708409109493113,
	2.8892357679493803,
	3.0083625321061414,
	3.1279600016283409,
	3.2483759298059929,
	3.3699565156724272,
	3.4921266180322332,
	3.6167780243852077,
	3.7428257095914272,
	3.8714195260439541,
	4.0018568622075152,
	4.1347538265165245,
	4.2698515531310255,
	4.4073151932231163,
	4.5477757588434793,
	4.6916839853347518,
	4.8381860075590497,
	4.98711459148634,
	5.1394086225374362,
	5.2954320328914273,
	5.4547996706551807,
	5.6179430398258798,
	5.7854261046540572,
	5.9572590855752168,
	6.1338377483850959,
	6.3146271493746315,
	6.5007681318549722,
	6.6910277657111523,
	6.8874206889547853,
	7.0906724064447362,
	7.300012395286176,
	7.5152004073939471,
	7.7371968836548763,
	7.967011361930826,
	8.2047620136833306,
	8.4509495013592719,
	8.7062331313114285,
	8.9712800604516367,
	9.2477747928543685,
	9.5336582732598938,
	9.8305338505622633,
	10.138253445161972,
	10.458841002817021,
	10.791257653213403,
	11.137061676460361,
	11.497245696768685,
	11.873092491563133,
	12.266308444852404,
	12.679232386776823,
	13.112420921729109,
	13.568332330473066,
	14.048288500128841,
	14.55928387445797,
	15.102267078224731,
	15.681442884625884,
	16.296231155797678,
	16.957029976373022,
	17.665667577495515,
	18.428617399959613,
	19.246245413444463,
	20.132748950529415,
	21.089561569797109,
	22.134558706039947,
	23.286903419272555,
	24.557575982844916,
	25.951390666078048,
	27.501403546654991,
	29.240835631697419,
	31.218944050821449,
	33.461626331039497,
	36.010288612155925,
	38.964634502496672,
	42.396666388214271,
	46.505108884603082,
	51.444975606348407,
	57.729261190982633,
	65.846053951969125,
	75.668368184575527,
	88.276625408154615,
	105.67002167093399,
	136.46957950931011,
	199.61077017914533,
	1462.2110958032815,
	100790.20636471517,
}
