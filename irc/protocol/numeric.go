package protocol

import "fmt"

// Numeric identifies a numeric protocol reply. Replies travel on the wire as
// exactly three ASCII digits in the command position.
type Numeric int

// Numeric replies defined in RFC 2812 plus the SASL numerics from IRCv3.
const (
	RPL_WELCOME           Numeric = 1
	RPL_YOURHOST          Numeric = 2
	RPL_CREATED           Numeric = 3
	RPL_MYINFO            Numeric = 4
	RPL_BOUNCE            Numeric = 5
	RPL_TRACELINK         Numeric = 200
	RPL_TRACECONNECTING   Numeric = 201
	RPL_TRACEHANDSHAKE    Numeric = 202
	RPL_TRACEUNKNOWN      Numeric = 203
	RPL_TRACEOPERATOR     Numeric = 204
	RPL_TRACEUSER         Numeric = 205
	RPL_TRACESERVER       Numeric = 206
	RPL_TRACESERVICE      Numeric = 207
	RPL_TRACENEWTYPE      Numeric = 208
	RPL_TRACECLASS        Numeric = 209
	RPL_TRACERECONNECT    Numeric = 210
	RPL_STATSLINKINFO     Numeric = 211
	RPL_STATSCOMMANDS     Numeric = 212
	RPL_ENDOFSTATS        Numeric = 219
	RPL_UMODEIS           Numeric = 221
	RPL_SERVLIST          Numeric = 234
	RPL_SERVLISTEND       Numeric = 235
	RPL_STATSUPTIME       Numeric = 242
	RPL_STATSOLINE        Numeric = 243
	RPL_LUSERCLIENT       Numeric = 251
	RPL_LUSEROP           Numeric = 252
	RPL_LUSERUNKNOWN      Numeric = 253
	RPL_LUSERCHANNELS     Numeric = 254
	RPL_LUSERME           Numeric = 255
	RPL_ADMINME           Numeric = 256
	RPL_ADMINLOC1         Numeric = 257
	RPL_ADMINLOC2         Numeric = 258
	RPL_ADMINEMAIL        Numeric = 259
	RPL_TRACELOG          Numeric = 261
	RPL_TRACEEND          Numeric = 262
	RPL_TRYAGAIN          Numeric = 263
	RPL_AWAY              Numeric = 301
	RPL_USERHOST          Numeric = 302
	RPL_ISON              Numeric = 303
	RPL_UNAWAY            Numeric = 305
	RPL_NOWAWAY           Numeric = 306
	RPL_WHOISUSER         Numeric = 311
	RPL_WHOISSERVER       Numeric = 312
	RPL_WHOISOPERATOR     Numeric = 313
	RPL_WHOWASUSER        Numeric = 314
	RPL_ENDOFWHO          Numeric = 315
	RPL_WHOISIDLE         Numeric = 317
	RPL_ENDOFWHOIS        Numeric = 318
	RPL_WHOISCHANNELS     Numeric = 319
	RPL_LISTSTART         Numeric = 321
	RPL_LIST              Numeric = 322
	RPL_LISTEND           Numeric = 323
	RPL_CHANNELMODEIS     Numeric = 324
	RPL_UNIQOPIS          Numeric = 325
	RPL_NOTOPIC           Numeric = 331
	RPL_TOPIC             Numeric = 332
	RPL_INVITING          Numeric = 341
	RPL_SUMMONING         Numeric = 342
	RPL_INVITELIST        Numeric = 346
	RPL_ENDOFINVITELIST   Numeric = 347
	RPL_EXCEPTLIST        Numeric = 348
	RPL_ENDOFEXCEPTLIST   Numeric = 349
	RPL_VERSION           Numeric = 351
	RPL_WHOREPLY          Numeric = 352
	RPL_NAMREPLY          Numeric = 353
	RPL_LINKS             Numeric = 364
	RPL_ENDOFLINKS        Numeric = 365
	RPL_ENDOFNAMES        Numeric = 366
	RPL_BANLIST           Numeric = 367
	RPL_ENDOFBANLIST      Numeric = 368
	RPL_ENDOFWHOWAS       Numeric = 369
	RPL_INFO              Numeric = 371
	RPL_MOTD              Numeric = 372
	RPL_ENDOFINFO         Numeric = 374
	RPL_MOTDSTART         Numeric = 375
	RPL_ENDOFMOTD         Numeric = 376
	RPL_YOUREOPER         Numeric = 381
	RPL_REHASHING         Numeric = 382
	RPL_YOURESERVICE      Numeric = 383
	RPL_TIME              Numeric = 391
	RPL_USERSSTART        Numeric = 392
	RPL_USERS             Numeric = 393
	RPL_ENDOFUSERS        Numeric = 394
	RPL_NOUSERS           Numeric = 395
	ERR_NOSUCHNICK        Numeric = 401
	ERR_NOSUCHSERVER      Numeric = 402
	ERR_NOSUCHCHANNEL     Numeric = 403
	ERR_CANNOTSENDTOCHAN  Numeric = 404
	ERR_TOOMANYCHANNELS   Numeric = 405
	ERR_WASNOSUCHNICK     Numeric = 406
	ERR_TOOMANYTARGETS    Numeric = 407
	ERR_NOSUCHSERVICE     Numeric = 408
	ERR_NOORIGIN          Numeric = 409
	ERR_NORECIPIENT       Numeric = 411
	ERR_NOTEXTTOSEND      Numeric = 412
	ERR_NOTOPLEVEL        Numeric = 413
	ERR_WILDTOPLEVEL      Numeric = 414
	ERR_BADMASK           Numeric = 415
	ERR_UNKNOWNCOMMAND    Numeric = 421
	ERR_NOMOTD            Numeric = 422
	ERR_NOADMININFO       Numeric = 423
	ERR_FILEERROR         Numeric = 424
	ERR_NONICKNAMEGIVEN   Numeric = 431
	ERR_ERRONEUSNICKNAME  Numeric = 432
	ERR_NICKNAMEINUSE     Numeric = 433
	ERR_NICKCOLLISION     Numeric = 436
	ERR_UNAVAILRESOURCE   Numeric = 437
	ERR_USERNOTINCHANNEL  Numeric = 441
	ERR_NOTONCHANNEL      Numeric = 442
	ERR_USERONCHANNEL     Numeric = 443
	ERR_NOLOGIN           Numeric = 444
	ERR_SUMMONDISABLED    Numeric = 445
	ERR_USERSDISABLED     Numeric = 446
	ERR_NOTREGISTERED     Numeric = 451
	ERR_NEEDMOREPARAMS    Numeric = 461
	ERR_ALREADYREGISTRED  Numeric = 462
	ERR_NOPERMFORHOST     Numeric = 463
	ERR_PASSWDMISMATCH    Numeric = 464
	ERR_YOUREBANNEDCREEP  Numeric = 465
	ERR_YOUWILLBEBANNED   Numeric = 466
	ERR_KEYSET            Numeric = 467
	ERR_CHANNELISFULL     Numeric = 471
	ERR_UNKNOWNMODE       Numeric = 472
	ERR_INVITEONLYCHAN    Numeric = 473
	ERR_BANNEDFROMCHAN    Numeric = 474
	ERR_BADCHANNELKEY     Numeric = 475
	ERR_BADCHANMASK       Numeric = 476
	ERR_NOCHANMODES       Numeric = 477
	ERR_BANLISTFULL       Numeric = 478
	ERR_NOPRIVILEGES      Numeric = 481
	ERR_CHANOPRIVSNEEDED  Numeric = 482
	ERR_CANTKILLSERVER    Numeric = 483
	ERR_RESTRICTED        Numeric = 484
	ERR_UNIQOPPRIVSNEEDED Numeric = 485
	ERR_NOOPERHOST        Numeric = 491
	ERR_UMODEUNKNOWNFLAG  Numeric = 501
	ERR_USERSDONTMATCH    Numeric = 502
	RPL_LOGGEDIN          Numeric = 900
	RPL_LOGGEDOUT         Numeric = 901
	ERR_NICKLOCKED        Numeric = 902
	RPL_SASLSUCCESS       Numeric = 903
	ERR_SASLFAIL          Numeric = 904
	ERR_SASLTOOLONG       Numeric = 905
	ERR_SASLABORTED       Numeric = 906
	ERR_SASLALREADY       Numeric = 907
	RPL_SASLMECHS         Numeric = 908
)

// replyNames maps the known reply codes to their conventional names. The
// names double as the command names in the interchange form.
var replyNames = map[Numeric]string{
	RPL_WELCOME:           "RPL_WELCOME",
	RPL_YOURHOST:          "RPL_YOURHOST",
	RPL_CREATED:           "RPL_CREATED",
	RPL_MYINFO:            "RPL_MYINFO",
	RPL_BOUNCE:            "RPL_BOUNCE",
	RPL_TRACELINK:         "RPL_TRACELINK",
	RPL_TRACECONNECTING:   "RPL_TRACECONNECTING",
	RPL_TRACEHANDSHAKE:    "RPL_TRACEHANDSHAKE",
	RPL_TRACEUNKNOWN:      "RPL_TRACEUNKNOWN",
	RPL_TRACEOPERATOR:     "RPL_TRACEOPERATOR",
	RPL_TRACEUSER:         "RPL_TRACEUSER",
	RPL_TRACESERVER:       "RPL_TRACESERVER",
	RPL_TRACESERVICE:      "RPL_TRACESERVICE",
	RPL_TRACENEWTYPE:      "RPL_TRACENEWTYPE",
	RPL_TRACECLASS:        "RPL_TRACECLASS",
	RPL_TRACERECONNECT:    "RPL_TRACERECONNECT",
	RPL_STATSLINKINFO:     "RPL_STATSLINKINFO",
	RPL_STATSCOMMANDS:     "RPL_STATSCOMMANDS",
	RPL_ENDOFSTATS:        "RPL_ENDOFSTATS",
	RPL_UMODEIS:           "RPL_UMODEIS",
	RPL_SERVLIST:          "RPL_SERVLIST",
	RPL_SERVLISTEND:       "RPL_SERVLISTEND",
	RPL_STATSUPTIME:       "RPL_STATSUPTIME",
	RPL_STATSOLINE:        "RPL_STATSOLINE",
	RPL_LUSERCLIENT:       "RPL_LUSERCLIENT",
	RPL_LUSEROP:           "RPL_LUSEROP",
	RPL_LUSERUNKNOWN:      "RPL_LUSERUNKNOWN",
	RPL_LUSERCHANNELS:     "RPL_LUSERCHANNELS",
	RPL_LUSERME:           "RPL_LUSERME",
	RPL_ADMINME:           "RPL_ADMINME",
	RPL_ADMINLOC1:         "RPL_ADMINLOC1",
	RPL_ADMINLOC2:         "RPL_ADMINLOC2",
	RPL_ADMINEMAIL:        "RPL_ADMINEMAIL",
	RPL_TRACELOG:          "RPL_TRACELOG",
	RPL_TRACEEND:          "RPL_TRACEEND",
	RPL_TRYAGAIN:          "RPL_TRYAGAIN",
	RPL_AWAY:              "RPL_AWAY",
	RPL_USERHOST:          "RPL_USERHOST",
	RPL_ISON:              "RPL_ISON",
	RPL_UNAWAY:            "RPL_UNAWAY",
	RPL_NOWAWAY:           "RPL_NOWAWAY",
	RPL_WHOISUSER:         "RPL_WHOISUSER",
	RPL_WHOISSERVER:       "RPL_WHOISSERVER",
	RPL_WHOISOPERATOR:     "RPL_WHOISOPERATOR",
	RPL_WHOWASUSER:        "RPL_WHOWASUSER",
	RPL_ENDOFWHO:          "RPL_ENDOFWHO",
	RPL_WHOISIDLE:         "RPL_WHOISIDLE",
	RPL_ENDOFWHOIS:        "RPL_ENDOFWHOIS",
	RPL_WHOISCHANNELS:     "RPL_WHOISCHANNELS",
	RPL_LISTSTART:         "RPL_LISTSTART",
	RPL_LIST:              "RPL_LIST",
	RPL_LISTEND:           "RPL_LISTEND",
	RPL_CHANNELMODEIS:     "RPL_CHANNELMODEIS",
	RPL_UNIQOPIS:          "RPL_UNIQOPIS",
	RPL_NOTOPIC:           "RPL_NOTOPIC",
	RPL_TOPIC:             "RPL_TOPIC",
	RPL_INVITING:          "RPL_INVITING",
	RPL_SUMMONING:         "RPL_SUMMONING",
	RPL_INVITELIST:        "RPL_INVITELIST",
	RPL_ENDOFINVITELIST:   "RPL_ENDOFINVITELIST",
	RPL_EXCEPTLIST:        "RPL_EXCEPTLIST",
	RPL_ENDOFEXCEPTLIST:   "RPL_ENDOFEXCEPTLIST",
	RPL_VERSION:           "RPL_VERSION",
	RPL_WHOREPLY:          "RPL_WHOREPLY",
	RPL_NAMREPLY:          "RPL_NAMREPLY",
	RPL_LINKS:             "RPL_LINKS",
	RPL_ENDOFLINKS:        "RPL_ENDOFLINKS",
	RPL_ENDOFNAMES:        "RPL_ENDOFNAMES",
	RPL_BANLIST:           "RPL_BANLIST",
	RPL_ENDOFBANLIST:      "RPL_ENDOFBANLIST",
	RPL_ENDOFWHOWAS:       "RPL_ENDOFWHOWAS",
	RPL_INFO:              "RPL_INFO",
	RPL_MOTD:              "RPL_MOTD",
	RPL_ENDOFINFO:         "RPL_ENDOFINFO",
	RPL_MOTDSTART:         "RPL_MOTDSTART",
	RPL_ENDOFMOTD:         "RPL_ENDOFMOTD",
	RPL_YOUREOPER:         "RPL_YOUREOPER",
	RPL_REHASHING:         "RPL_REHASHING",
	RPL_YOURESERVICE:      "RPL_YOURESERVICE",
	RPL_TIME:              "RPL_TIME",
	RPL_USERSSTART:        "RPL_USERSSTART",
	RPL_USERS:             "RPL_USERS",
	RPL_ENDOFUSERS:        "RPL_ENDOFUSERS",
	RPL_NOUSERS:           "RPL_NOUSERS",
	ERR_NOSUCHNICK:        "ERR_NOSUCHNICK",
	ERR_NOSUCHSERVER:      "ERR_NOSUCHSERVER",
	ERR_NOSUCHCHANNEL:     "ERR_NOSUCHCHANNEL",
	ERR_CANNOTSENDTOCHAN:  "ERR_CANNOTSENDTOCHAN",
	ERR_TOOMANYCHANNELS:   "ERR_TOOMANYCHANNELS",
	ERR_WASNOSUCHNICK:     "ERR_WASNOSUCHNICK",
	ERR_TOOMANYTARGETS:    "ERR_TOOMANYTARGETS",
	ERR_NOSUCHSERVICE:     "ERR_NOSUCHSERVICE",
	ERR_NOORIGIN:          "ERR_NOORIGIN",
	ERR_NORECIPIENT:       "ERR_NORECIPIENT",
	ERR_NOTEXTTOSEND:      "ERR_NOTEXTTOSEND",
	ERR_NOTOPLEVEL:        "ERR_NOTOPLEVEL",
	ERR_WILDTOPLEVEL:      "ERR_WILDTOPLEVEL",
	ERR_BADMASK:           "ERR_BADMASK",
	ERR_UNKNOWNCOMMAND:    "ERR_UNKNOWNCOMMAND",
	ERR_NOMOTD:            "ERR_NOMOTD",
	ERR_NOADMININFO:       "ERR_NOADMININFO",
	ERR_FILEERROR:         "ERR_FILEERROR",
	ERR_NONICKNAMEGIVEN:   "ERR_NONICKNAMEGIVEN",
	ERR_ERRONEUSNICKNAME:  "ERR_ERRONEUSNICKNAME",
	ERR_NICKNAMEINUSE:     "ERR_NICKNAMEINUSE",
	ERR_NICKCOLLISION:     "ERR_NICKCOLLISION",
	ERR_UNAVAILRESOURCE:   "ERR_UNAVAILRESOURCE",
	ERR_USERNOTINCHANNEL:  "ERR_USERNOTINCHANNEL",
	ERR_NOTONCHANNEL:      "ERR_NOTONCHANNEL",
	ERR_USERONCHANNEL:     "ERR_USERONCHANNEL",
	ERR_NOLOGIN:           "ERR_NOLOGIN",
	ERR_SUMMONDISABLED:    "ERR_SUMMONDISABLED",
	ERR_USERSDISABLED:     "ERR_USERSDISABLED",
	ERR_NOTREGISTERED:     "ERR_NOTREGISTERED",
	ERR_NEEDMOREPARAMS:    "ERR_NEEDMOREPARAMS",
	ERR_ALREADYREGISTRED:  "ERR_ALREADYREGISTRED",
	ERR_NOPERMFORHOST:     "ERR_NOPERMFORHOST",
	ERR_PASSWDMISMATCH:    "ERR_PASSWDMISMATCH",
	ERR_YOUREBANNEDCREEP:  "ERR_YOUREBANNEDCREEP",
	ERR_YOUWILLBEBANNED:   "ERR_YOUWILLBEBANNED",
	ERR_KEYSET:            "ERR_KEYSET",
	ERR_CHANNELISFULL:     "ERR_CHANNELISFULL",
	ERR_UNKNOWNMODE:       "ERR_UNKNOWNMODE",
	ERR_INVITEONLYCHAN:    "ERR_INVITEONLYCHAN",
	ERR_BANNEDFROMCHAN:    "ERR_BANNEDFROMCHAN",
	ERR_BADCHANNELKEY:     "ERR_BADCHANNELKEY",
	ERR_BADCHANMASK:       "ERR_BADCHANMASK",
	ERR_NOCHANMODES:       "ERR_NOCHANMODES",
	ERR_BANLISTFULL:       "ERR_BANLISTFULL",
	ERR_NOPRIVILEGES:      "ERR_NOPRIVILEGES",
	ERR_CHANOPRIVSNEEDED:  "ERR_CHANOPRIVSNEEDED",
	ERR_CANTKILLSERVER:    "ERR_CANTKILLSERVER",
	ERR_RESTRICTED:        "ERR_RESTRICTED",
	ERR_UNIQOPPRIVSNEEDED: "ERR_UNIQOPPRIVSNEEDED",
	ERR_NOOPERHOST:        "ERR_NOOPERHOST",
	ERR_UMODEUNKNOWNFLAG:  "ERR_UMODEUNKNOWNFLAG",
	ERR_USERSDONTMATCH:    "ERR_USERSDONTMATCH",
	RPL_LOGGEDIN:          "RPL_LOGGEDIN",
	RPL_LOGGEDOUT:         "RPL_LOGGEDOUT",
	ERR_NICKLOCKED:        "ERR_NICKLOCKED",
	RPL_SASLSUCCESS:       "RPL_SASLSUCCESS",
	ERR_SASLFAIL:          "ERR_SASLFAIL",
	ERR_SASLTOOLONG:       "ERR_SASLTOOLONG",
	ERR_SASLABORTED:       "ERR_SASLABORTED",
	ERR_SASLALREADY:       "ERR_SASLALREADY",
	RPL_SASLMECHS:         "RPL_SASLMECHS",
}

var replyCodes = make(map[string]Numeric)

func init() {
	for code, name := range replyNames {
		replyCodes[name] = code
	}
}

// Known reports whether the code is a recognized reply.
func (n Numeric) Known() bool {
	_, ok := replyNames[n]
	return ok
}

// Name returns the conventional reply name, or the zero-padded code for
// replies the engine does not recognize.
func (n Numeric) Name() string {
	if name, ok := replyNames[n]; ok {
		return name
	}
	return n.String()
}

// String returns the code the way it travels on the wire, as exactly three
// digits.
func (n Numeric) String() string {
	return fmt.Sprintf("%03d", int(n))
}

// ReplyFromName resolves a conventional reply name back to its code.
func ReplyFromName(name string) (Numeric, bool) {
	code, ok := replyCodes[name]
	return code, ok
}
