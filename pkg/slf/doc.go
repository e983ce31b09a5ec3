/*
	Package slf models the XML activity logs ("SLF" files) written by ski and
	bike computers.

	An SLF document looks roughly like this:

		<Activity revision="400" fileDate="...">
			<Computer unit="..." serial="..."/>
			<GeneralInformation>
				<name>Afternoon run</name>
				...
			</GeneralInformation>
			<Entries>
				<Entry latitude="47.2619" longitude="11.3947" altitude="1820.5" .../>
				...
			</Entries>
		</Activity>

	Only position and elevation of each entry are modelled. Everything else a
	device writes is accepted and dropped.
*/
package slf
