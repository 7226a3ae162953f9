package mutparam

var WriteReport = writeReport
