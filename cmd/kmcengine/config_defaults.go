package main

// defaultConfig holds a minimal demo command script per chemistry,
// exercised through internal/config.Parse the same way a real input
// script would be, should <CHEMISTRY>_CONFIG_FILE not be set. These are
// illustrative rates, not calibrated against any published ALD kinetics.
var defaultConfig = map[string]string{
	"hfo2": `pulse_time 1.0 1.0
purge_time 0.5 0.5
event 1 VACANCY O 1.0 0 0.0 0 1
event 1 HfX4O HfX3O 1.0 0 0.5 4 1
event 2 O HfX4O VACANCY HfX3O 1.0 0 0.2 0 1
event 3 OH HfX4OH O HfX3O 1.0 0 0.3 0 2
`,
	"zno": `pulse_time 1.0 1.0
purge_time 0.5 0.5
event 1 VACANCY O 1.0 0 0.0 0 1
event 1 ZnXO ZnO 1.0 0 0.4 3 1
event 2 O ZnXO VACANCY ZnO 1.0 0 0.2 0 1
event 3 OH ZnXOH O ZnO 1.0 0 0.3 0 2
`,
}
